package main

import "github.com/crimson-sun/braid/internal/cmd"

func main() {
	cmd.Execute()
}
