package syllables

import (
	"strings"
	"unicode"
)

// Estimator counts syllables in text.
type Estimator struct {
	overrides *Overrides
}

// NewEstimator creates an estimator using a snapshot of the given overrides.
// A nil table means the heuristic alone.
func NewEstimator(overrides *Overrides) *Estimator {
	return &Estimator{overrides: &Overrides{words: overrides.All()}}
}

// Count returns the total number of syllables of all whitespace separated words of the text.
func (e *Estimator) Count(text string) int {
	var total int
	for _, field := range strings.Fields(strings.ToLower(text)) {
		total += e.Word(field)
	}

	return total
}

// Word returns the syllable count of a single word. Leading and trailing runes that are
// neither letters nor digits are ignored, a token consisting only of them is not a word
// and counts zero.
func (e *Estimator) Word(word string) int {
	word = strings.TrimFunc(strings.ToLower(word), isNotAlnum)
	if word == "" {
		return 0
	}

	if v, ok := e.overrides.Lookup(word); ok {
		return v
	}

	return Heuristic(word)
}

// Heuristic estimates syllables of a single lowercase word by its vowel groups.
func Heuristic(word string) int {
	runes := []rune(word)

	var groups int
	var prevVowel bool
	for _, r := range runes {
		v := isVowel(r)
		if v && !prevVowel {
			groups++
		}
		prevVowel = v
	}

	// Silent trailing e: "fine", "some", but not "free" or "agree".
	if n := len(runes); n >= 2 && runes[n-1] == 'e' && !isVowel(runes[n-2]) {
		groups--
	}

	return max(groups, 1)
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	default:
		return false
	}
}

func isNotAlnum(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}
