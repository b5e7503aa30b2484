package learning

import (
	"fmt"
	"io"
	"strings"

	"github.com/smsbayes/sms-classifier/pkg/corpus"
)

// Prediction pairs a test message with the model's verdict
type Prediction struct {
	Message   corpus.Message
	Predicted Result
}

// Report aggregates classification results over a labeled test subset.
// Mismatches are split into three buckets for inspection: messages wrongly
// flagged as spam, spam that slipped through as ham, and messages the model
// declined to decide.
type Report struct {
	Total   int
	Correct int

	FalseSpam    []Prediction // true ham, predicted spam
	FalseHam     []Prediction // true spam, predicted ham
	Undetermined []Prediction // predicted undetermined, any true label
}

// Evaluate classifies every message in the test subset and aggregates the
// outcome. Reporting only; nothing feeds back into the model.
func Evaluate(model *Model, test []corpus.Message) *Report {
	report := &Report{Total: len(test)}

	for _, msg := range test {
		predicted := model.Classify(msg.Text)

		switch {
		case predicted.Matches(msg.Label):
			report.Correct++
		case predicted == ResultUndetermined:
			report.Undetermined = append(report.Undetermined, Prediction{Message: msg, Predicted: predicted})
		case predicted == ResultSpam:
			report.FalseSpam = append(report.FalseSpam, Prediction{Message: msg, Predicted: predicted})
		default:
			report.FalseHam = append(report.FalseHam, Prediction{Message: msg, Predicted: predicted})
		}
	}

	return report
}

// Accuracy returns the share of correctly classified messages in percent
func (r *Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total) * 100
}

// WriteReport prints an evaluation summary
func (r *Report) WriteReport(w io.Writer) {
	fmt.Fprintf(w, "Evaluation Results\n")
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 40))
	fmt.Fprintf(w, "  Messages:     %d\n", r.Total)
	fmt.Fprintf(w, "  Correct:      %d\n", r.Correct)
	fmt.Fprintf(w, "  Accuracy:     %.2f%%\n", r.Accuracy())
	fmt.Fprintf(w, "  False spam:   %d\n", len(r.FalseSpam))
	fmt.Fprintf(w, "  False ham:    %d\n", len(r.FalseHam))
	fmt.Fprintf(w, "  Undetermined: %d\n", len(r.Undetermined))
}

// WriteMismatches dumps the three mismatch buckets for manual review
func (r *Report) WriteMismatches(w io.Writer) {
	writeBucket(w, "False spam (ham classified as spam)", r.FalseSpam)
	writeBucket(w, "False ham (spam classified as ham)", r.FalseHam)
	writeBucket(w, "Undetermined", r.Undetermined)
}

func writeBucket(w io.Writer, title string, predictions []Prediction) {
	if len(predictions) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, p := range predictions {
		fmt.Fprintf(w, "  [%s] %s\n", p.Message.Label, truncate(p.Message.Text, 70))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
