package cmd

import (
	"github.com/spf13/cobra"

	"journalgen/internal/dataset"
	"journalgen/internal/logger"
)

var importCmd = &cobra.Command{
	Use:   "import <csv-file>",
	Short: "Import a labeled corpus CSV into the local store",
	Long: `Import a corpus CSV into the SQLite store the sampler reads.

The file must have an "Answer" column with the entry text and
"Answer.f1.<tone>.raw" columns carrying TRUE/FALSE-style labels.
Importing replaces any previously imported corpus.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := dataset.Open(cfg.Dataset.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.ImportCSV(args[0])
		if err != nil {
			return err
		}
		logger.Infof("imported %d entries into %s", n, cfg.Dataset.DBPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
