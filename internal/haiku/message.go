package haiku

import (
	"strings"
)

// Message builds the diagnostic for a definition whose comments are not a haiku.
// Lines are echoed as they were written.
func Message(kind DefinitionKind, name string, lines []string) string {
	var b strings.Builder

	b.WriteString("Comments for ")
	b.WriteString(kind.String())
	b.WriteString(" `")
	b.WriteString(name)
	b.WriteString("` must be in the form of a haiku.\n")
	b.WriteString("Please rewrite the following comments to be more poetic:\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}
