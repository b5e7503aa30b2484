package corpus

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
)

// Label is the human-assigned class of a message
type Label string

const (
	Spam Label = "spam"
	Ham  Label = "ham"
)

// ParseLabel validates a raw label string. Labels are case-sensitive.
func ParseLabel(s string) (Label, error) {
	switch Label(s) {
	case Spam:
		return Spam, nil
	case Ham:
		return Ham, nil
	default:
		return "", fmt.Errorf("unknown label %q (want %q or %q)", s, Spam, Ham)
	}
}

// Message is a single labeled SMS message. Immutable once loaded.
type Message struct {
	Label Label
	Text  string
}

// Load reads a labeled corpus from a tab-separated file
func Load(path string) ([]Message, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer file.Close()

	messages, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return messages, nil
}

// Read parses tab-separated (label, text) records, one per line, no header.
// Malformed records are rejected here so the classifier core never sees them.
func Read(r io.Reader) ([]Message, error) {
	var messages []Message

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Text()
		if raw == "" {
			continue
		}

		labelField, text, ok := strings.Cut(raw, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: expected two tab-separated columns", line)
		}

		label, err := ParseLabel(labelField)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		messages = append(messages, Message{Label: label, Text: text})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}

	return messages, nil
}

// Split shuffles a copy of the corpus with a fixed seed and partitions it
// positionally into training and test subsets. The same seed always yields
// the same partition; the two subsets are disjoint and cover the input.
func Split(messages []Message, seed int64, trainRatio float64) (train, test []Message) {
	shuffled := make([]Message, len(messages))
	copy(shuffled, messages)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	cut := int(float64(len(shuffled)) * trainRatio)
	return shuffled[:cut], shuffled[cut:]
}

// CountByLabel returns the number of messages per label
func CountByLabel(messages []Message) (spam, ham int) {
	for _, m := range messages {
		if m.Label == Spam {
			spam++
		} else {
			ham++
		}
	}
	return spam, ham
}
