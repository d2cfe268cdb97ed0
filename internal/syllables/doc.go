// Package syllables estimates how many syllables a line of English prose has.
//
// The estimate is a vowel-group heuristic: every maximal run of vowels
// (a, e, i, o, u and y) in a word is a syllable, a trailing e that does not
// follow another vowel is silent and every word has at least one syllable.
// This is wrong for plenty of English words, so an [Overrides] table maps
// words to their exact count. An override always wins over the heuristic.
//
// An [Overrides] table is a builder: fill it before validation starts and hand
// it to [NewEstimator], which takes a private copy. The resulting [Estimator]
// is immutable and safe for concurrent use.
package syllables
