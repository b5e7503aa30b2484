package learning

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name      string
		lowercase bool
		input     string
		want      []string
	}{
		{
			name:      "basic message",
			lowercase: true,
			input:     "Free entry in 2 a wkly comp",
			want:      []string{"free", "entry", "in", "2", "a", "wkly", "comp"},
		},
		{
			name:      "punctuation runs collapse",
			lowercase: true,
			input:     "WINNER!! As a valued network customer...",
			want:      []string{"winner", "as", "a", "valued", "network", "customer"},
		},
		{
			name:      "case preserved when sensitive",
			lowercase: false,
			input:     "Call FREE now",
			want:      []string{"Call", "FREE", "now"},
		},
		{
			name:      "underscore and digits are word characters",
			lowercase: true,
			input:     "txt WORD_1 to 87121",
			want:      []string{"txt", "word_1", "to", "87121"},
		},
		{
			name:      "leading and trailing separators",
			lowercase: true,
			input:     "...hello, world!!!",
			want:      []string{"hello", "world"},
		},
		{
			name:      "empty input",
			lowercase: true,
			input:     "",
			want:      nil,
		},
		{
			name:      "punctuation only",
			lowercase: true,
			input:     "?!... --- !!!",
			want:      nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokenizer := NewTokenizer(tc.lowercase)
			got := tokenizer.Tokenize(tc.input)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	tokenizer := NewTokenizer(true)
	input := "Had your mobile 11 months or more? U R entitled to Update"

	first := tokenizer.Tokenize(input)
	for i := 0; i < 10; i++ {
		if !reflect.DeepEqual(tokenizer.Tokenize(input), first) {
			t.Fatal("identical input produced different token sequences")
		}
	}
}
