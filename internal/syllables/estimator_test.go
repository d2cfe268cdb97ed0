package syllables

import (
	"testing"
)

func TestHeuristic(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{word: "cat", want: 1},
		{word: "setup", want: 2},
		{word: "waiting", want: 2},
		{word: "fine", want: 1},
		{word: "some", want: 1},
		{word: "complete", want: 2},
		{word: "the", want: 1},
		{word: "free", want: 1},
		{word: "dandy", want: 2},
		{word: "rhythm", want: 1},
		{word: "psst", want: 1},
		{word: "e", want: 1},
		{word: "doing", want: 1},
		{word: "beautiful", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := Heuristic(tt.word); got != tt.want {
				t.Errorf("Heuristic(%q) = %d, want %d", tt.word, got, tt.want)
			}
		})
	}
}

func TestEstimatorCount(t *testing.T) {
	est := NewEstimator(nil)

	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "empty",
			text: "",
			want: 0,
		},
		{
			name: "whitespace only",
			text: " \t ",
			want: 0,
		},
		{
			name: "case folded",
			text: "Setup Is FINE and Dandy",
			want: 7,
		},
		{
			name: "punctuation trimmed",
			text: "setup, complete!",
			want: 4,
		},
		{
			name: "comment marker leftovers are not words",
			text: "// -- waiting",
			want: 2,
		},
		{
			name: "no vowels still one syllable",
			text: "psst hmm",
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := est.Count(tt.text); got != tt.want {
				t.Errorf("Count(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestEstimatorOverridePrecedence(t *testing.T) {
	overrides, err := NewOverrides(map[string]int{
		"fire":   2,
		"rhythm": 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	est := NewEstimator(overrides)

	tests := []struct {
		word      string
		heuristic int
		want      int
	}{
		{word: "fire", heuristic: 1, want: 2},
		{word: "rhythm", heuristic: 1, want: 2},
		{word: "doing", heuristic: 1, want: 2},
		{word: "Doing", heuristic: 1, want: 2},
		{word: "/doing", heuristic: 1, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if h := Heuristic(tt.word); h != tt.heuristic {
				t.Fatalf("Heuristic(%q) = %d, want %d", tt.word, h, tt.heuristic)
			}
			if got := est.Count(tt.word); got != tt.want {
				t.Errorf("Count(%q) = %d, want %d", tt.word, got, tt.want)
			}
		})
	}
}

func TestEstimatorIdempotent(t *testing.T) {
	est := NewEstimator(nil)

	const text = "setting up the poem slam"
	first := est.Count(text)
	for i := 0; i < 10; i++ {
		if got := est.Count(text); got != first {
			t.Fatalf("call %d: got %d, first call returned %d", i, got, first)
		}
	}
}

func TestEstimatorSnapshot(t *testing.T) {
	overrides, err := NewOverrides(nil)
	if err != nil {
		t.Fatal(err)
	}
	est := NewEstimator(overrides)

	if err := overrides.Add("cat", 4); err != nil {
		t.Fatal(err)
	}

	if got := est.Count("cat"); got != 1 {
		t.Fatalf("estimator must not see overrides added after construction, got %d", got)
	}
}

func TestEveryWordCountsAtLeastOne(t *testing.T) {
	est := NewEstimator(nil)
	for _, word := range []string{"rhythm", "nth", "x", "brr", "tsk"} {
		if got := est.Count(word); got < 1 {
			t.Errorf("Count(%q) = %d, want at least 1", word, got)
		}
	}
}
