package learning

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// TokenStats contains per-token statistics from a trained model
type TokenStats struct {
	Token      string
	SpamCount  int
	HamCount   int
	SpamProb   float64 // smoothed P(token|spam)
	HamProb    float64 // smoothed P(token|ham)
	Spamminess float64 // 0 = ham-like, 1 = spam-like
}

// TokenStats returns statistics for a single token, or nil if the token is
// outside the vocabulary. The token is normalized the same way training
// input was.
func (m *Model) TokenStats(token string) *TokenStats {
	normalized := m.tokenizer.Tokenize(token)
	if len(normalized) != 1 {
		return nil
	}
	token = normalized[0]

	if _, ok := m.logProbSpam[token]; !ok {
		return nil
	}

	spamCount := m.spam.counts[token]
	hamCount := m.ham.counts[token]
	spamProb := smoothedProb(spamCount, m.spam.tokens, m.vocabSize, m.alpha)
	hamProb := smoothedProb(hamCount, m.ham.tokens, m.vocabSize, m.alpha)

	return &TokenStats{
		Token:      token,
		SpamCount:  spamCount,
		HamCount:   hamCount,
		SpamProb:   spamProb,
		HamProb:    hamProb,
		Spamminess: spamProb / (spamProb + hamProb),
	}
}

// TopSpamTokens returns the most spam-associated vocabulary tokens
func (m *Model) TopSpamTokens(limit int) []*TokenStats {
	return m.topTokens(limit, func(a, b *TokenStats) bool {
		if a.Spamminess != b.Spamminess {
			return a.Spamminess > b.Spamminess
		}
		return a.Token < b.Token
	})
}

// TopHamTokens returns the most ham-associated vocabulary tokens
func (m *Model) TopHamTokens(limit int) []*TokenStats {
	return m.topTokens(limit, func(a, b *TokenStats) bool {
		if a.Spamminess != b.Spamminess {
			return a.Spamminess < b.Spamminess
		}
		return a.Token < b.Token
	})
}

func (m *Model) topTokens(limit int, less func(a, b *TokenStats) bool) []*TokenStats {
	stats := make([]*TokenStats, 0, m.vocabSize)
	for token := range m.logProbSpam {
		if ts := m.TokenStats(token); ts != nil {
			stats = append(stats, ts)
		}
	}

	sort.Slice(stats, func(i, j int) bool {
		return less(stats[i], stats[j])
	})

	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

// ModelInfo contains summary information about a trained model
type ModelInfo struct {
	SpamMessages   int
	HamMessages    int
	SpamTokens     int
	HamTokens      int
	VocabularySize int
	PriorSpam      float64
	PriorHam       float64
	SmoothingAlpha float64
}

// Info returns summary information about the trained model
func (m *Model) Info() *ModelInfo {
	return &ModelInfo{
		SpamMessages:   m.spam.messages,
		HamMessages:    m.ham.messages,
		SpamTokens:     m.spam.tokens,
		HamTokens:      m.ham.tokens,
		VocabularySize: m.vocabSize,
		PriorSpam:      m.PriorSpam(),
		PriorHam:       m.PriorHam(),
		SmoothingAlpha: m.alpha,
	}
}

// WriteStats prints model statistics and the most discriminative tokens
func (m *Model) WriteStats(w io.Writer) {
	info := m.Info()

	fmt.Fprintf(w, "Naive Bayes Model\n")
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 40))
	fmt.Fprintf(w, "Training data:\n")
	fmt.Fprintf(w, "  Spam messages: %d\n", info.SpamMessages)
	fmt.Fprintf(w, "  Ham messages:  %d\n", info.HamMessages)
	fmt.Fprintf(w, "  Spam tokens:   %d\n", info.SpamTokens)
	fmt.Fprintf(w, "  Ham tokens:    %d\n", info.HamTokens)
	fmt.Fprintf(w, "  Vocabulary:    %d\n", info.VocabularySize)
	fmt.Fprintf(w, "  P(spam)=%.4f P(ham)=%.4f alpha=%.2f\n",
		info.PriorSpam, info.PriorHam, info.SmoothingAlpha)

	fmt.Fprintf(w, "\nTop spam tokens:\n")
	for i, ts := range m.TopSpamTokens(10) {
		fmt.Fprintf(w, "  %2d. %-15s (%.3f spamminess, %d/%d)\n",
			i+1, ts.Token, ts.Spamminess, ts.SpamCount, ts.HamCount)
	}

	fmt.Fprintf(w, "\nTop ham tokens:\n")
	for i, ts := range m.TopHamTokens(10) {
		fmt.Fprintf(w, "  %2d. %-15s (%.3f spamminess, %d/%d)\n",
			i+1, ts.Token, ts.Spamminess, ts.SpamCount, ts.HamCount)
	}

	fmt.Fprintf(w, "\n")
}
