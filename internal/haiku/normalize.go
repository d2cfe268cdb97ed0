package haiku

import (
	"regexp"
)

var noiseRe = regexp.MustCompile(`\W\s`)

// Normalize removes every non-word character directly followed by a whitespace, together
// with that whitespace. This strips comment markers ("# text" → "text") but also joins words
// around internal punctuation ("a, b" → "ab"). Case is kept.
func Normalize(raw string) string {
	return noiseRe.ReplaceAllString(raw, "")
}
