package corpus

import (
	"strings"
	"testing"
)

func TestParseLabel(t *testing.T) {
	testCases := []struct {
		input string
		want  Label
		ok    bool
	}{
		{"spam", Spam, true},
		{"ham", Ham, true},
		{"SPAM", "", false}, // labels are case-sensitive
		{"Ham", "", false},
		{"junk", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		got, err := ParseLabel(tc.input)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("ParseLabel(%q) = %v, %v, want %v", tc.input, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Errorf("ParseLabel(%q) expected error, got %v", tc.input, got)
		}
	}
}

func TestRead(t *testing.T) {
	input := "ham\tGo until jurong point, crazy..\n" +
		"spam\tFree entry in 2 a wkly comp to win FA Cup final tkts\n" +
		"ham\tOk lar... Joking wif u oni...\n"

	messages, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	if messages[0].Label != Ham || messages[1].Label != Spam {
		t.Errorf("labels not preserved: %v, %v", messages[0].Label, messages[1].Label)
	}
	if messages[1].Text != "Free entry in 2 a wkly comp to win FA Cup final tkts" {
		t.Errorf("text not preserved: %q", messages[1].Text)
	}
}

func TestReadKeepsEmbeddedTabs(t *testing.T) {
	// Only the first tab separates label from text
	messages, err := Read(strings.NewReader("ham\tpart one\tpart two\n"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if messages[0].Text != "part one\tpart two" {
		t.Errorf("expected embedded tab preserved, got %q", messages[0].Text)
	}
}

func TestReadMalformed(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"missing tab", "ham\tok\nno tab here\n"},
		{"bad label", "ham\tok\nspamm\toops\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.input))
			if err == nil {
				t.Fatal("expected error for malformed input")
			}
			if !strings.Contains(err.Error(), "line 2") {
				t.Errorf("error should name the offending line: %v", err)
			}
		})
	}
}

func makeMessages(n int) []Message {
	messages := make([]Message, n)
	for i := range messages {
		label := Ham
		if i%3 == 0 {
			label = Spam
		}
		messages[i] = Message{Label: label, Text: strings.Repeat("x", i%7+1)}
	}
	return messages
}

func TestSplitDeterministic(t *testing.T) {
	messages := makeMessages(100)

	train1, test1 := Split(messages, 1, 0.8)
	train2, test2 := Split(messages, 1, 0.8)

	if len(train1) != 80 || len(test1) != 20 {
		t.Fatalf("expected 80/20 split, got %d/%d", len(train1), len(test1))
	}

	for i := range train1 {
		if train1[i] != train2[i] {
			t.Fatalf("training subset differs at %d for identical seeds", i)
		}
	}
	for i := range test1 {
		if test1[i] != test2[i] {
			t.Fatalf("test subset differs at %d for identical seeds", i)
		}
	}
}

func TestSplitPartition(t *testing.T) {
	messages := makeMessages(50)
	train, test := Split(messages, 42, 0.8)

	if len(train)+len(test) != len(messages) {
		t.Fatalf("partition does not cover the corpus: %d + %d != %d",
			len(train), len(test), len(messages))
	}

	// Union must be the full corpus as a multiset
	count := func(msgs []Message) map[Message]int {
		m := make(map[Message]int)
		for _, msg := range msgs {
			m[msg]++
		}
		return m
	}

	all := count(messages)
	split := count(train)
	for msg, n := range count(test) {
		split[msg] += n
	}

	for msg, n := range all {
		if split[msg] != n {
			t.Errorf("message %v appears %d times after split, want %d", msg, split[msg], n)
		}
	}
}

func TestSplitDoesNotMutateInput(t *testing.T) {
	messages := makeMessages(20)
	original := make([]Message, len(messages))
	copy(original, messages)

	Split(messages, 7, 0.8)

	for i := range messages {
		if messages[i] != original[i] {
			t.Fatalf("input corpus mutated at index %d", i)
		}
	}
}

func TestCountByLabel(t *testing.T) {
	messages := []Message{
		{Spam, "a"}, {Ham, "b"}, {Ham, "c"},
	}
	spam, ham := CountByLabel(messages)
	if spam != 1 || ham != 2 {
		t.Errorf("CountByLabel = %d, %d, want 1, 2", spam, ham)
	}
}
