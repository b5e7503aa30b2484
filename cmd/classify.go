package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/smsbayes/sms-classifier/pkg/corpus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	classifyConfigFile    string
	classifyDataFile      string
	classifyAlpha         float64
	classifyCaseSensitive bool
	classifyShowScores    bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify [message...]",
	Short: "Classify a message as spam, ham or undetermined",
	Long: `Train the model from the configured corpus and classify the given
message. With no arguments, messages are read from stdin, one per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(classifyConfigFile)
		if err != nil {
			return err
		}
		defer logger.Sync()

		if cmd.Flags().Changed("data") {
			cfg.Corpus.Path = classifyDataFile
		}
		if cmd.Flags().Changed("alpha") {
			cfg.Learning.SmoothingAlpha = classifyAlpha
		}
		if cmd.Flags().Changed("case-sensitive") {
			cfg.Learning.CaseSensitive = classifyCaseSensitive
		}

		messages, err := corpus.Load(cfg.Corpus.Path)
		if err != nil {
			return fmt.Errorf("failed to load corpus: %w", err)
		}
		logger.Info("corpus loaded",
			zap.String("path", cfg.Corpus.Path),
			zap.Int("messages", len(messages)))

		model, err := trainModel(messages, cfg, logger)
		if err != nil {
			return err
		}

		classifyOne := func(text string) {
			result := model.Classify(text)
			if classifyShowScores {
				logSpam, logHam := model.Scores(text)
				fmt.Printf("%s\t(log spam %.4f, log ham %.4f)\t%s\n", result, logSpam, logHam, text)
			} else {
				fmt.Printf("%s\t%s\n", result, text)
			}
		}

		if len(args) > 0 {
			classifyOne(strings.Join(args, " "))
			return nil
		}

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			classifyOne(scanner.Text())
		}
		return scanner.Err()
	},
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyConfigFile, "config", "c", "", "Configuration file path")
	classifyCmd.Flags().StringVarP(&classifyDataFile, "data", "d", "", "Corpus file path (overrides config)")
	classifyCmd.Flags().Float64Var(&classifyAlpha, "alpha", 1.0, "Smoothing constant (overrides config)")
	classifyCmd.Flags().BoolVar(&classifyCaseSensitive, "case-sensitive", false, "Keep token case (overrides config)")
	classifyCmd.Flags().BoolVarP(&classifyShowScores, "scores", "s", false, "Show log-space class scores")
}
