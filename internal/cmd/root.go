// Package cmd implements the braid command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/crimson-sun/braid/internal/config"
	"github.com/crimson-sun/braid/internal/logging"
)

var (
	cfgFile string
	verbose bool

	logger *zap.Logger
	cfg    config.Config
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "braid",
	Short: "Braid — schema-unified training-table pipeline",
	Long: `Braid standardizes heterogeneous social-media datasets (crisis tweets,
non-crisis high-emotion tweets, emotion-labeled comments) into one canonical
schema, recovers or imputes missing timestamps reproducibly, and combines
everything into a single shuffled master training table.`,
	SilenceUsage:      true,
	PersistentPreRunE: initialize,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initViper)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./braid.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("input-dir", "", "directory holding raw source tables")
	rootCmd.PersistentFlags().String("output-dir", "", "directory for standardized outputs")
	rootCmd.PersistentFlags().Int64("seed", 0, "master random seed")

	_ = viper.BindPFlag("input_dir", rootCmd.PersistentFlags().Lookup("input-dir"))
	_ = viper.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("output-dir"))
	_ = viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
}

func initViper() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("braid")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("BRAID")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// initialize builds the logger and resolves configuration: defaults,
// overlaid by the config file and environment, overlaid by flags the
// user actually set.
func initialize(cmd *cobra.Command, args []string) error {
	var err error
	logger, err = logging.New(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	c := config.Default()
	if err := viper.Unmarshal(&c, func(dc *mapstructure.DecoderConfig) { dc.TagName = "yaml" }); err != nil {
		return fmt.Errorf("failed to decode configuration: %w", err)
	}
	// Unset flags decode as zero values; restore defaults for those.
	if c.Seed == 0 && !cmd.Flags().Changed("seed") && !viper.InConfig("seed") {
		c.Seed = config.Default().Seed
	}
	if c.InputDir == "" {
		c.InputDir = config.Default().InputDir
	}
	if c.OutputDir == "" {
		c.OutputDir = config.Default().OutputDir
	}
	if c.SampleSize == 0 {
		c.SampleSize = config.Default().SampleSize
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config file", zap.String("path", used))
	}
	return nil
}

// applyFullFlag overlays a command's --full switch onto the resolved
// config. The flag exists on more than one command and viper keeps a
// single pflag per key, so sharing one write_full binding would leave all
// but the last-bound command's flag invisible; each command reads its own
// flag set instead.
func applyFullFlag(cmd *cobra.Command) {
	if cmd.Flags().Changed("full") {
		full, _ := cmd.Flags().GetBool("full")
		cfg.WriteFull = full
	}
}
