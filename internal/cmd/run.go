package cmd

import (
	"github.com/spf13/cobra"

	"github.com/crimson-sun/braid/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: standardize, sample, combine",
	RunE:  runAll,
}

func init() {
	runCmd.Flags().Bool("full", false, "write the full versioned master table")

	rootCmd.AddCommand(runCmd)
}

func runAll(cmd *cobra.Command, args []string) error {
	applyFullFlag(cmd)
	p, err := pipeline.New(cfg, logger)
	if err != nil {
		return err
	}
	rep := p.NewReport()
	if err := p.Standardize(rep, nil); err != nil {
		return err
	}
	if err := p.Combine(rep); err != nil {
		return err
	}
	_, err = p.FinishReport(rep)
	return err
}
