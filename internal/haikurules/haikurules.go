package haikurules

import (
	"fmt"
)

// Rule represents a haikulint rule code (HKU-series).
type Rule int

const (
	ruleInvalid Rule = iota

	HKU001LineCount
	HKU100SyllablePattern
)

// String returns the canonical code and short name of the rule.
// Example: "HKU001: LineCount"
func (r Rule) String() string {
	switch r {
	case HKU001LineCount:
		return "HKU001: LineCount"
	case HKU100SyllablePattern:
		return "HKU100: SyllablePattern"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Code returns the bare rule code, like "HKU001".
func (r Rule) Code() string {
	switch r {
	case HKU001LineCount:
		return "HKU001"
	case HKU100SyllablePattern:
		return "HKU100"
	default:
		return ""
	}
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case HKU001LineCount:
		return "Haiku comments must have exactly three lines."
	case HKU100SyllablePattern:
		return "Haiku lines must have 5, 7 and 5 syllables."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// LineCount is reported for comment blocks that are not three lines long.
func LineCount() Rule { return HKU001LineCount }

// SyllablePattern is reported for three-line blocks off the 5-7-5 rhythm.
func SyllablePattern() Rule { return HKU100SyllablePattern }
