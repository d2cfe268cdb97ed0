package haikurules

import (
	"testing"
)

func TestRuleStrings(t *testing.T) {
	tests := []struct {
		rule Rule
		str  string
		code string
	}{
		{rule: LineCount(), str: "HKU001: LineCount", code: "HKU001"},
		{rule: SyllablePattern(), str: "HKU100: SyllablePattern", code: "HKU100"},
		{rule: ruleInvalid, str: "rule-unknown(0)", code: ""},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.rule.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.rule.Code(); got != tt.code {
				t.Errorf("Code() = %q, want %q", got, tt.code)
			}
		})
	}
}
