package haiku

import (
	"fmt"

	"github.com/sirkon/haikulint/internal/haikurules"
)

// Outcome of a single validation.
type Outcome int

const (
	// NotApplicable means the definition is not a subject and was not checked.
	NotApplicable Outcome = iota
	Pass
	Fail
)

func (o Outcome) String() string {
	switch o {
	case NotApplicable:
		return "not-applicable"
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	default:
		return fmt.Sprintf("outcome-invalid(%d)", o)
	}
}

// Stage is the last validation stage a verdict went through.
type Stage int

const (
	StageNotStarted Stage = iota
	StageLineCountChecked
	StageSyllablesChecked
)

func (s Stage) String() string {
	switch s {
	case StageNotStarted:
		return "not-started"
	case StageLineCountChecked:
		return "line-count-checked"
	case StageSyllablesChecked:
		return "syllables-checked"
	default:
		return fmt.Sprintf("stage-invalid(%d)", s)
	}
}

// Verdict is the result of validating one definition.
type Verdict struct {
	Outcome    Outcome
	Stage      Stage
	Definition Definition

	// Rule and Message are only set for failures.
	Rule    haikurules.Rule
	Message string

	// Syllables is nil unless syllables were counted.
	Syllables []int
}

// Failed is a shortcut for Outcome == Fail.
func (v Verdict) Failed() bool {
	return v.Outcome == Fail
}
