package cmd

import (
	"fmt"
	"time"

	"github.com/smsbayes/sms-classifier/pkg/config"
	"github.com/smsbayes/sms-classifier/pkg/corpus"
	"github.com/smsbayes/sms-classifier/pkg/learning"
	"github.com/smsbayes/sms-classifier/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "smsbayes",
	Short: "SMSBAYES - Naive Bayes SMS spam classifier",
	Long: `SMSBAYES classifies SMS messages as spam or ham using a multinomial
Naive Bayes model trained on a labeled tab-separated corpus.

Messages with tied class scores are reported as undetermined and left
to manual review.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("SMSBAYES - Naive Bayes SMS spam classifier")
		fmt.Println("Use 'smsbayes --help' for usage information")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads configuration and builds the logger shared by all commands
func setup(configPath string) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

// trainModel loads the corpus and trains a model on the given messages
func trainModel(messages []corpus.Message, cfg *config.Config, logger *zap.Logger) (*learning.Model, error) {
	start := time.Now()

	model, err := learning.Train(messages, &learning.Config{
		SmoothingAlpha: cfg.Learning.SmoothingAlpha,
		CaseSensitive:  cfg.Learning.CaseSensitive,
	})
	if err != nil {
		return nil, fmt.Errorf("training failed: %w", err)
	}

	info := model.Info()
	logger.Info("model trained",
		zap.Int("spam_messages", info.SpamMessages),
		zap.Int("ham_messages", info.HamMessages),
		zap.Int("vocabulary", info.VocabularySize),
		zap.Duration("took", time.Since(start)))

	return model, nil
}
