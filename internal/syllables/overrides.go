package syllables

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Overrides maps lowercase words to their exact syllable count.
type Overrides struct {
	words map[string]int
}

// NewOverrides creates a table seeded with the predefined corrections and the
// given custom entries. Custom entries take precedence over predefined ones.
func NewOverrides(custom map[string]int) (*Overrides, error) {
	predefined := map[string]int{
		// "oi" is a single vowel group for the heuristic.
		"doing":   2,
		"going":   2,
		"poem":    2,
		"poems":   2,
		"poet":    2,
		"poetic":  3,
		"poetry":  3,
		"quiet":   2,
		"being":   2,
		"create":  2,
		"science": 2,

		// Silent e that is not silent.
		"recipe": 3,
		"maybe":  2,
	}

	o := &Overrides{words: maps.Clone(predefined)}
	if err := o.Merge(custom); err != nil {
		return nil, err
	}

	return o, nil
}

// Add sets an exact syllable count for the word.
func (o *Overrides) Add(word string, count int) error {
	key := foldWord(word)
	if key == "" {
		return fmt.Errorf("empty override word")
	}
	if strings.ContainsFunc(key, isSpace) {
		return fmt.Errorf("override %q must be a single word", word)
	}
	if count < 1 {
		return fmt.Errorf("override %q must have a positive syllable count, got %d", word, count)
	}

	if o.words == nil {
		o.words = map[string]int{}
	}
	o.words[key] = count
	return nil
}

// Merge adds every entry of the given map. Keys that differ only in case would compete
// for the same entry and are rejected.
func (o *Overrides) Merge(words map[string]int) error {
	origin := make(map[string]string, len(words))
	for _, word := range slices.Sorted(maps.Keys(words)) {
		key := foldWord(word)
		if prev, ok := origin[key]; ok {
			return fmt.Errorf("merge overrides: %q and %q are the same word", prev, word)
		}
		origin[key] = word

		if err := o.Add(word, words[word]); err != nil {
			return fmt.Errorf("merge overrides: %w", err)
		}
	}

	return nil
}

// Lookup returns the override for the word, case-insensitively.
func (o *Overrides) Lookup(word string) (int, bool) {
	if o == nil {
		return 0, false
	}
	v, ok := o.words[strings.ToLower(word)]
	return v, ok
}

// Len returns the number of entries.
func (o *Overrides) Len() int {
	if o == nil {
		return 0
	}
	return len(o.words)
}

// All returns a copy of the table contents.
func (o *Overrides) All() map[string]int {
	if o == nil {
		return map[string]int{}
	}
	return maps.Clone(o.words)
}

func foldWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
