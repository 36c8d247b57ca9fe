package cmd

import (
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"journalgen/internal/logger"
)

var daemonCron string

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Generate entries on a cron schedule",
	Long: `Run journalgen as a long-lived process that generates a batch of
entries every time the cron expression fires. Each trigger runs one
batch with the same flags the generate command takes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		applyGenerateFlags(cmd, cfg)

		c := cron.New()
		_, err = c.AddFunc(daemonCron, func() {
			saved, attempted, err := runBatch(cmd.Context(), cfg)
			if err != nil {
				logger.Errorf("scheduled batch failed: %v", err)
				return
			}
			logger.Infof("scheduled batch done: %d of %d entries saved", saved, attempted)
		})
		if err != nil {
			return err
		}

		logger.Infof("daemon started with schedule %q, tone %q", daemonCron, genTone)
		c.Run()
		return nil
	},
}

func init() {
	addGenerationFlags(daemonCmd)
	daemonCmd.Flags().StringVar(&daemonCron, "cron", "0 9 * * *",
		"Cron expression for when to generate a batch")
	rootCmd.AddCommand(daemonCmd)
}
