package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"journalgen/internal/dataset"
)

var tonesCmd = &cobra.Command{
	Use:   "tones",
	Short: "List tones available in the imported corpus",
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

		table, err := store.Table()
		if err != nil {
			return err
		}
		tags := table.Tags()
		if len(tags) == 0 {
			fmt.Println("No tones found. Import a corpus with 'journalgen import <csv-file>'.")
			return nil
		}
		for _, tag := range tags {
			fmt.Println(tag)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tonesCmd)
}
