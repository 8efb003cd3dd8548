package cmd

import (
	"github.com/spf13/cobra"

	"github.com/crimson-sun/braid/internal/pipeline"
)

var standardizeCmd = &cobra.Command{
	Use:   "standardize [source...]",
	Short: "Standardize raw source tables into the canonical schema",
	Long: `Standardize reads each raw source table, normalizes it into the
canonical schema (recovering timestamps from identifiers and imputing the
rest), and writes per-source standardized and dates-only tables plus the
crisis_combined and stratified non_crisis_combined tables.

With no arguments every configured source runs; otherwise only the named
sources run (e.g. "braid standardize humaid crisislex").`,
	RunE: runStandardize,
}

func init() {
	rootCmd.AddCommand(standardizeCmd)
}

func runStandardize(cmd *cobra.Command, args []string) error {
	p, err := pipeline.New(cfg, logger)
	if err != nil {
		return err
	}
	rep := p.NewReport()
	if err := p.Standardize(rep, args); err != nil {
		return err
	}
	_, err = p.FinishReport(rep)
	return err
}
