package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/smsbayes/sms-classifier/pkg/config"
	"github.com/smsbayes/sms-classifier/pkg/corpus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	trainConfigFile    string
	trainDataFile      string
	trainAlpha         float64
	trainCaseSensitive bool
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the Naive Bayes model and show its statistics",
	Long: `Train the multinomial Naive Bayes model on the full labeled corpus and
print vocabulary statistics plus the most discriminative tokens.

The model lives in memory only; classify and evaluate retrain from the
corpus on each run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(trainConfigFile)
		if err != nil {
			return err
		}
		defer logger.Sync()

		applyTrainFlags(cmd, cfg)

		start := time.Now()
		messages, err := corpus.Load(cfg.Corpus.Path)
		if err != nil {
			return fmt.Errorf("failed to load corpus: %w", err)
		}

		spam, ham := corpus.CountByLabel(messages)
		logger.Info("corpus loaded",
			zap.String("path", cfg.Corpus.Path),
			zap.Int("messages", len(messages)),
			zap.Int("spam", spam),
			zap.Int("ham", ham))

		model, err := trainModel(messages, cfg, logger)
		if err != nil {
			return err
		}

		duration := time.Since(start)
		fmt.Printf("Trained on %d messages in %v (%.0f messages/second)\n\n",
			len(messages), duration, float64(len(messages))/duration.Seconds())

		model.WriteStats(os.Stdout)
		return nil
	},
}

// applyTrainFlags overrides config values with explicitly set flags
func applyTrainFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("data") {
		cfg.Corpus.Path = trainDataFile
	}
	if cmd.Flags().Changed("alpha") {
		cfg.Learning.SmoothingAlpha = trainAlpha
	}
	if cmd.Flags().Changed("case-sensitive") {
		cfg.Learning.CaseSensitive = trainCaseSensitive
	}
}

func init() {
	trainCmd.Flags().StringVarP(&trainConfigFile, "config", "c", "", "Configuration file path")
	trainCmd.Flags().StringVarP(&trainDataFile, "data", "d", "", "Corpus file path (overrides config)")
	trainCmd.Flags().Float64Var(&trainAlpha, "alpha", 1.0, "Smoothing constant (overrides config)")
	trainCmd.Flags().BoolVar(&trainCaseSensitive, "case-sensitive", false, "Keep token case (overrides config)")
}
