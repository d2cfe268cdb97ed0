package haiku

import (
	"slices"

	"github.com/sirkon/haikulint/internal/haikurules"
)

// Pattern is the syllable count of every haiku line.
var Pattern = []int{5, 7, 5}

// Counter estimates syllables of a normalized line.
type Counter interface {
	Count(text string) int
}

// Validator checks comment blocks of definitions against the haiku rule.
// It holds no mutable state and can be shared between goroutines as long as
// its selector and counter can.
type Validator struct {
	selector Selector
	counter  Counter
}

// NewValidator creates a validator with the given subject selection policy and syllable counter.
func NewValidator(selector Selector, counter Counter) *Validator {
	return &Validator{
		selector: selector,
		counter:  counter,
	}
}

// Validate checks comments of the definition.
func (v *Validator) Validate(def Definition, block CommentBlock) Verdict {
	res := Verdict{
		Outcome:    NotApplicable,
		Stage:      StageNotStarted,
		Definition: def,
	}

	if !v.selector.IsSubject(def) {
		return res
	}

	res.Stage = StageLineCountChecked
	if len(block) != len(Pattern) {
		return v.fail(res, haikurules.LineCount(), block)
	}

	res.Stage = StageSyllablesChecked
	res.Syllables = make([]int, len(block))
	for i, line := range block {
		res.Syllables[i] = v.counter.Count(Normalize(line))
	}

	if !slices.Equal(res.Syllables, Pattern) {
		return v.fail(res, haikurules.SyllablePattern(), block)
	}

	res.Outcome = Pass
	return res
}

func (v *Validator) fail(res Verdict, rule haikurules.Rule, block CommentBlock) Verdict {
	res.Outcome = Fail
	res.Rule = rule
	res.Message = Message(res.Definition.Kind, res.Definition.Name, block)
	return res
}
