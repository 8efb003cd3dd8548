package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/crimson-sun/braid/internal/pipeline"
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Combine standardized tables into the shuffled master table",
	Long: `Combine unions the standardized goemotions, crisis, and sampled
non-crisis tables into one master table with partial label coverage,
applies one deterministic shuffle, and writes bounded preview samples.
The full master table is only written with --full, as a safety valve
against accidentally regenerating very large outputs.`,
	RunE: runCombine,
}

func init() {
	combineCmd.Flags().Bool("full", false, "write the full versioned master table")
	combineCmd.Flags().Int("sample-size", 0, "preview sample row bound")
	_ = viper.BindPFlag("sample_size", combineCmd.Flags().Lookup("sample-size"))

	rootCmd.AddCommand(combineCmd)
}

func runCombine(cmd *cobra.Command, args []string) error {
	applyFullFlag(cmd)
	p, err := pipeline.New(cfg, logger)
	if err != nil {
		return err
	}
	rep := p.NewReport()
	if err := p.Combine(rep); err != nil {
		return err
	}
	_, err = p.FinishReport(rep)
	return err
}
