package haiku

import (
	"strings"
)

// Selector decides whether a definition must have haiku comments.
type Selector interface {
	IsSubject(def Definition) bool
}

// SelectorFunc is a function implementing [Selector].
type SelectorFunc func(def Definition) bool

// IsSubject to implement Selector.
func (f SelectorFunc) IsSubject(def Definition) bool {
	return f(def)
}

// HasPrefix selects definitions whose name starts with the prefix.
func HasPrefix(prefix string) Selector {
	return SelectorFunc(func(def Definition) bool {
		return strings.HasPrefix(def.Name, prefix)
	})
}

// CallsWithLiteral selects definitions whose body calls an output function with a string
// literal containing the marker. Definitions without a body inspector are never selected.
func CallsWithLiteral(marker string) Selector {
	return SelectorFunc(func(def Definition) bool {
		if def.Body == nil {
			return false
		}

		return def.Body.HasCallLiteral(marker)
	})
}

// AnyOf selects a definition when at least one of the selectors does.
func AnyOf(selectors ...Selector) Selector {
	return SelectorFunc(func(def Definition) bool {
		for _, s := range selectors {
			if s.IsSubject(def) {
				return true
			}
		}

		return false
	})
}

// AllOf selects a definition when every selector does. No selectors select nothing.
func AllOf(selectors ...Selector) Selector {
	return SelectorFunc(func(def Definition) bool {
		if len(selectors) == 0 {
			return false
		}

		for _, s := range selectors {
			if !s.IsSubject(def) {
				return false
			}
		}

		return true
	})
}
