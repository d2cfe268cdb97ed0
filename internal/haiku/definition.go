package haiku

import (
	"fmt"
	"go/token"
)

// DefinitionKind tells what kind of definition carries the comments.
type DefinitionKind int

const (
	DefinitionKindFunction DefinitionKind = iota
	DefinitionKindMethod
)

func (k DefinitionKind) String() string {
	switch k {
	case DefinitionKindFunction:
		return "function"
	case DefinitionKindMethod:
		return "method"
	default:
		return fmt.Sprintf("definition-kind-invalid(%d)", k)
	}
}

// BodyInspector gives selectors a look into a definition body without exposing the syntax tree.
type BodyInspector interface {
	// HasCallLiteral tells if the body calls an output function with a string literal argument
	// containing the given substring.
	HasCallLiteral(substr string) bool
}

// Definition describes a candidate definition.
type Definition struct {
	Name string
	Kind DefinitionKind

	// Pos is only passed through to diagnostics.
	Pos token.Pos

	// Body is optional.
	Body BodyInspector
}

// CommentBlock is the list of raw comment lines of a definition, in source order.
type CommentBlock []string
