package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"journalgen/internal/config"
	"journalgen/internal/dataset"
	"journalgen/internal/export"
	"journalgen/internal/gen"
	"journalgen/internal/logger"
)

var (
	genTone      string
	genWords     int
	genDays      int
	genPerDay    int
	genExamples  int
	genMaxTokens int
	genStartDate string
	genOutputDir string
	genProvider  string
	genModel     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate synthetic journal entries",
	Long: `Generate one or more synthetic journal entries in the given tone.

Each entry samples fresh stylistic examples from the corpus, asks the
configured model for text of approximately the target length, checks
word-count adherence and truncates overlong output before saving.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		applyGenerateFlags(cmd, cfg)

		saved, attempted, err := runBatch(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		logger.Infof("generation complete: %d of %d entries saved to %s",
			saved, attempted, cfg.Output.Dir)
		return nil
	},
}

func init() {
	addGenerationFlags(generateCmd)
	generateCmd.Flags().IntVar(&genDays, "days", 1,
		"Number of days to generate entries for")
	generateCmd.Flags().StringVar(&genStartDate, "start-date", "",
		"Start date in YYYYMMDD format (default: today)")
	rootCmd.AddCommand(generateCmd)
}

// addGenerationFlags registers the per-entry flags shared by generate
// and daemon.
func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&genTone, "tone", "",
		"Target tone/emotion for the entries (required)")
	cmd.Flags().IntVar(&genWords, "words", 0,
		"Target word count per entry (default from config: 100)")
	cmd.Flags().IntVar(&genPerDay, "entries-per-day", 1,
		"Number of entries to generate per day")
	cmd.Flags().IntVar(&genExamples, "examples", -1,
		"Reference examples per prompt, 0 disables few-shot (default from config: 3)")
	cmd.Flags().IntVar(&genMaxTokens, "max-tokens", 0,
		"Override the model output token budget (0 derives it from --words)")
	cmd.Flags().StringVar(&genOutputDir, "output-dir", "",
		"Directory for generated .txt files")
	cmd.Flags().StringVar(&genProvider, "provider", "",
		"Model provider: gemini, openai, claude")
	cmd.Flags().StringVar(&genModel, "model", "",
		"Model name for the selected provider")
	cmd.MarkFlagRequired("tone")
}

// applyGenerateFlags overlays set flags onto loaded config values.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config) {
	if genWords > 0 {
		cfg.Generation.WordCount = genWords
	}
	if cmd.Flags().Changed("examples") {
		cfg.Generation.Examples = genExamples
	}
	if genMaxTokens > 0 {
		cfg.Generation.MaxTokens = genMaxTokens
	}
	if genOutputDir != "" {
		cfg.Output.Dir = genOutputDir
	}
	if genProvider != "" {
		cfg.AI.Provider = genProvider
		if genModel == "" {
			cfg.AI.Model = "" // let provider defaults apply
		}
	}
	if genModel != "" {
		cfg.AI.Model = genModel
	}
}

// runBatch runs the full pipeline for the configured number of days and
// entries per day. A failed entry is skipped; the batch continues.
func runBatch(ctx context.Context, cfg *config.Config) (saved, attempted int, err error) {
	if cfg.Generation.WordCount <= 0 {
		return 0, 0, fmt.Errorf("target word count must be positive, got %d", cfg.Generation.WordCount)
	}
	if genDays < 1 {
		genDays = 1
	}
	if genPerDay < 1 {
		genPerDay = 1
	}

	start := time.Now()
	if genStartDate != "" {
		start, err = time.Parse("20060102", genStartDate)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid --start-date %q: %w", genStartDate, err)
		}
	}

	var table *dataset.Table
	if cfg.Generation.Examples > 0 {
		store, err := dataset.Open(cfg.Dataset.DBPath)
		if err != nil {
			logger.Warnf("could not open corpus at %s: %v; generating without examples", cfg.Dataset.DBPath, err)
		} else {
			defer store.Close()
			table, err = store.Table()
			if err != nil {
				logger.Warnf("could not load corpus: %v; generating without examples", err)
				table = nil
			} else if table.Len() == 0 {
				logger.Warnf("corpus is empty, run 'journalgen import' first; generating without examples")
				table = nil
			}
		}
	}

	client, err := gen.NewClient(ctx, cfg.AI)
	if err != nil {
		return 0, 0, err
	}
	generator := gen.NewGenerator(client)

	exporter, err := export.New(cfg.Output.Dir, cfg.Output.Prefix)
	if err != nil {
		return 0, 0, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for day := 0; day < genDays; day++ {
		date := start.AddDate(0, 0, day).Format("20060102")
		logger.Infof("== day %d of %d (%s), tone %q ==", day+1, genDays, date, genTone)

		for i := 1; i <= genPerDay; i++ {
			attempted++
			var examples []string
			if table != nil {
				// Fresh sample per entry so consecutive entries vary.
				examples = dataset.Sample(table, genTone, cfg.Generation.Examples, rng)
			}

			began := time.Now()
			res := generator.Generate(ctx, gen.Request{
				Tone:      genTone,
				WordCount: cfg.Generation.WordCount,
				Examples:  examples,
				MaxTokens: cfg.Generation.MaxTokens,
			})
			logger.Debugf("model call took %.2fs", time.Since(began).Seconds())

			if !res.OK {
				logger.Warnf("entry %d/%d for %s failed, skipping", i, genPerDay, date)
				continue
			}
			path, err := exporter.Save(res.Text)
			if err != nil {
				logger.Errorf("could not save entry %d/%d for %s: %v", i, genPerDay, date, err)
				continue
			}
			logger.Infof("saved %s", path)
			saved++
		}
	}
	return saved, attempted, nil
}
