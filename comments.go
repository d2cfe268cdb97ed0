package haikulint

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"github.com/sirkon/haikulint/internal/haiku"
)

// commentBlock returns raw lines of a doc comment. Every // comment is a line, /* */ comments are
// split into lines. Directives like //go:generate and lines made of comment markers only are not
// prose and are left out.
func commentBlock(doc *ast.CommentGroup) haiku.CommentBlock {
	if doc == nil {
		return nil
	}

	var lines haiku.CommentBlock
	for _, c := range doc.List {
		if isDirective(c.Text) {
			continue
		}

		for _, line := range strings.Split(c.Text, "\n") {
			if strings.Trim(line, "/* \t\r") == "" {
				continue
			}
			lines = append(lines, line)
		}
	}

	return lines
}

// isDirective mirrors the go/ast notion of a comment directive: //line, //extern, //export
// and //[a-z0-9]+:[a-z0-9].
func isDirective(text string) bool {
	c, ok := strings.CutPrefix(text, "//")
	if !ok {
		return false
	}

	for _, prefix := range []string{"line ", "extern ", "export "} {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}

	colon := strings.Index(c, ":")
	if colon <= 0 || colon+1 >= len(c) {
		return false
	}
	for i := 0; i <= colon+1; i++ {
		if i == colon {
			continue
		}
		b := c[i]
		if !('a' <= b && b <= 'z' || '0' <= b && b <= '9') {
			return false
		}
	}

	return true
}

// bodyInspector looks for output calls with literal arguments in a function body.
type bodyInspector struct {
	info    *types.Info
	body    *ast.BlockStmt
	outputs *knownOutputFuncs
}

// HasCallLiteral to implement haiku.BodyInspector.
func (b *bodyInspector) HasCallLiteral(substr string) bool {
	if b.body == nil {
		// Functions implemented elsewhere, like in assembly.
		return false
	}

	var found bool
	ast.Inspect(b.body, func(n ast.Node) bool {
		if found {
			return false
		}

		call, ok := n.(*ast.CallExpr)
		if !ok || !b.outputs.isOutputCall(b.info, call) {
			return true
		}

		for _, arg := range call.Args {
			lit, ok := arg.(*ast.BasicLit)
			if !ok || lit.Kind != token.STRING {
				continue
			}

			v, err := strconv.Unquote(lit.Value)
			if err != nil {
				continue
			}

			if strings.Contains(v, substr) {
				found = true
				return false
			}
		}

		return true
	})

	return found
}
