package learning

import (
	"fmt"
	"math"

	"github.com/smsbayes/sms-classifier/pkg/corpus"
)

// Config holds training configuration
type Config struct {
	// Laplace/add-alpha smoothing constant, must be > 0
	SmoothingAlpha float64

	// Keep token case instead of lower-casing
	CaseSensitive bool
}

// DefaultConfig returns the default training configuration
func DefaultConfig() *Config {
	return &Config{
		SmoothingAlpha: 1.0,
		CaseSensitive:  false,
	}
}

// Result is the outcome of classifying a single message
type Result string

const (
	ResultSpam Result = "spam"
	ResultHam  Result = "ham"

	// ResultUndetermined signals tied class scores: the model defers to
	// manual review instead of guessing.
	ResultUndetermined Result = "undetermined"
)

// Matches reports whether the result agrees with a true label
func (r Result) Matches(label corpus.Label) bool {
	return string(r) == string(label)
}

// classStats accumulates per-class training counts
type classStats struct {
	messages int
	tokens   int            // total token occurrences in the class
	counts   map[string]int // per-token occurrence counts
}

func newClassStats() classStats {
	return classStats{counts: make(map[string]int)}
}

func (cs *classStats) add(tokens []string) {
	for _, token := range tokens {
		cs.counts[token]++
		cs.tokens++
	}
	cs.messages++
}

// Model holds the estimated parameters of a trained classifier.
// It is written once by Train and read-only afterwards, so a single model
// may classify messages from multiple goroutines without locking.
type Model struct {
	tokenizer *Tokenizer
	alpha     float64

	spam classStats
	ham  classStats

	vocabSize int

	logPriorSpam float64
	logPriorHam  float64

	// Smoothed log conditional probabilities for every vocabulary token.
	// Tokens outside these maps are invisible to the model.
	logProbSpam map[string]float64
	logProbHam  map[string]float64
}

// Train builds a model from a labeled training subset. The subset is
// streamed exactly once; parameters are estimated at the end and never
// recomputed.
func Train(messages []corpus.Message, config *Config) (*Model, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.SmoothingAlpha <= 0 {
		return nil, fmt.Errorf("smoothing alpha must be positive, got %g", config.SmoothingAlpha)
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("training subset is empty")
	}

	m := &Model{
		tokenizer: NewTokenizer(!config.CaseSensitive),
		alpha:     config.SmoothingAlpha,
		spam:      newClassStats(),
		ham:       newClassStats(),
	}

	for _, msg := range messages {
		tokens := m.tokenizer.Tokenize(msg.Text)
		if msg.Label == corpus.Spam {
			m.spam.add(tokens)
		} else {
			m.ham.add(tokens)
		}
	}

	if m.spam.messages == 0 || m.ham.messages == 0 {
		return nil, fmt.Errorf("training subset must contain both spam and ham messages (got %d spam, %d ham)",
			m.spam.messages, m.ham.messages)
	}

	m.estimate()
	return m, nil
}

// estimate computes priors and smoothed conditionals from the class stats
func (m *Model) estimate() {
	total := m.spam.messages + m.ham.messages
	m.logPriorSpam = math.Log(float64(m.spam.messages) / float64(total))
	m.logPriorHam = math.Log(float64(m.ham.messages) / float64(total))

	vocabulary := make(map[string]struct{}, len(m.spam.counts)+len(m.ham.counts))
	for token := range m.spam.counts {
		vocabulary[token] = struct{}{}
	}
	for token := range m.ham.counts {
		vocabulary[token] = struct{}{}
	}
	m.vocabSize = len(vocabulary)

	m.logProbSpam = make(map[string]float64, m.vocabSize)
	m.logProbHam = make(map[string]float64, m.vocabSize)
	for token := range vocabulary {
		m.logProbSpam[token] = math.Log(smoothedProb(m.spam.counts[token], m.spam.tokens, m.vocabSize, m.alpha))
		m.logProbHam[token] = math.Log(smoothedProb(m.ham.counts[token], m.ham.tokens, m.vocabSize, m.alpha))
	}
}

// smoothedProb is the add-alpha conditional estimate
// (count + alpha) / (classTokens + alpha * vocabSize). Strictly positive
// for every vocabulary token, so no class score ever collapses to zero.
func smoothedProb(count, classTokens, vocabSize int, alpha float64) float64 {
	return (float64(count) + alpha) / (float64(classTokens) + alpha*float64(vocabSize))
}

// Scores returns the log-space class scores for a message:
// log P(c) + sum of log P(t|c) over in-vocabulary tokens. Working in log
// space avoids the underflow a product of many small probabilities would
// hit on long messages.
func (m *Model) Scores(text string) (logSpam, logHam float64) {
	logSpam = m.logPriorSpam
	logHam = m.logPriorHam

	for _, token := range m.tokenizer.Tokenize(text) {
		lp, ok := m.logProbSpam[token]
		if !ok {
			// Out-of-vocabulary tokens carry no evidence
			continue
		}
		logSpam += lp
		logHam += m.logProbHam[token]
	}
	return logSpam, logHam
}

// Classify scores a raw message against both classes. Equal scores, which
// in practice means the message contributed no in-vocabulary evidence and
// the priors are balanced, yield ResultUndetermined.
func (m *Model) Classify(text string) Result {
	logSpam, logHam := m.Scores(text)
	switch {
	case logSpam > logHam:
		return ResultSpam
	case logHam > logSpam:
		return ResultHam
	default:
		return ResultUndetermined
	}
}

// VocabularySize returns the number of distinct training tokens
func (m *Model) VocabularySize() int {
	return m.vocabSize
}

// PriorSpam returns P(spam) over the training subset
func (m *Model) PriorSpam() float64 {
	return math.Exp(m.logPriorSpam)
}

// PriorHam returns P(ham) over the training subset
func (m *Model) PriorHam() float64 {
	return math.Exp(m.logPriorHam)
}
