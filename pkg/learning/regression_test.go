package learning

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smsbayes/sms-classifier/pkg/corpus"
)

// referenceCorpus loads the 5,572-message SMS spam collection when present.
// Set SMSBAYES_DATA to point at the TSV file; the tests skip without it.
func referenceCorpus(t *testing.T) []corpus.Message {
	t.Helper()

	path := os.Getenv("SMSBAYES_DATA")
	if path == "" {
		path = "../../SMSSpamCollection"
	}
	if _, err := os.Stat(path); err != nil {
		t.Skipf("reference corpus not available at %s, skipping", path)
	}

	messages, err := corpus.Load(path)
	require.NoError(t, err)
	return messages
}

// Guards against silent regressions in the estimator or scorer: the
// reference run reaches ~98.7% accuracy on the held-out 20%.
func TestReferenceCorpusAccuracy(t *testing.T) {
	messages := referenceCorpus(t)

	train, test := corpus.Split(messages, 1, 0.8)
	model, err := Train(train, nil)
	require.NoError(t, err)

	report := Evaluate(model, test)
	t.Logf("accuracy %.2f%% (%d/%d), false spam %d, false ham %d, undetermined %d",
		report.Accuracy(), report.Correct, report.Total,
		len(report.FalseSpam), len(report.FalseHam), len(report.Undetermined))

	if report.Accuracy() <= 95 {
		t.Errorf("accuracy %.2f%% on the reference corpus, want > 95%%", report.Accuracy())
	}
}

// Disabling lower-casing splits tokens by case and adds vocabulary noise;
// it must not beat the lower-cased baseline.
func TestCaseSensitivityAblation(t *testing.T) {
	messages := referenceCorpus(t)

	train, test := corpus.Split(messages, 1, 0.8)

	folded, err := Train(train, &Config{SmoothingAlpha: 1})
	require.NoError(t, err)
	sensitive, err := Train(train, &Config{SmoothingAlpha: 1, CaseSensitive: true})
	require.NoError(t, err)

	foldedAcc := Evaluate(folded, test).Accuracy()
	sensitiveAcc := Evaluate(sensitive, test).Accuracy()
	t.Logf("lower-cased %.2f%%, case-sensitive %.2f%%", foldedAcc, sensitiveAcc)

	if sensitiveAcc > foldedAcc {
		t.Errorf("case-sensitive accuracy %.2f%% exceeds lower-cased baseline %.2f%%",
			sensitiveAcc, foldedAcc)
	}
}
