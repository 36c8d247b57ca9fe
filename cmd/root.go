package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"journalgen/internal/config"
	"journalgen/internal/logger"
)

var (
	logLevel   string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "journalgen",
	Short: "Synthetic journal entry generator",
	Long: `journalgen generates synthetic journal entries in a target tone,
guided by stylistic examples sampled from a labeled corpus.

Typical flow:
  journalgen import data.csv       Import the labeled corpus
  journalgen tones                 List the tones the corpus knows
  journalgen generate --tone happy Generate entries`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info",
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file path (default: .journalgen.yaml beside the executable)")
}

// loadConfig loads the config file honoring the --config flag.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromPath(configPath)
	}
	return config.Load()
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
