package config

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// SelectorMode describes which definitions are subjects of the haiku rule.
type SelectorMode int

const (
	SelectorModeInvalid SelectorMode = iota

	// SelectorModePrefix selects definitions whose name starts with the prefix.
	SelectorModePrefix

	// SelectorModeCall selects definitions calling an output function with a literal containing the marker.
	SelectorModeCall

	// SelectorModePrefixOrCall selects definitions satisfying either of the above.
	SelectorModePrefixOrCall

	// SelectorModePrefixAndCall selects definitions satisfying both.
	SelectorModePrefixAndCall
)

var selectorModeValueMap = map[SelectorMode]string{
	SelectorModePrefix:        "prefix",
	SelectorModeCall:          "call",
	SelectorModePrefixOrCall:  "prefix-or-call",
	SelectorModePrefixAndCall: "prefix-and-call",
}

func (m SelectorMode) String() string {
	v, ok := selectorModeValueMap[m]
	if !ok {
		return fmt.Sprintf("invalid(%d)", m)
	}

	return v
}

var _ encoding.TextUnmarshaler = (*SelectorMode)(nil)

// UnmarshalText for setting values with configs, CLI, etc.
func (m *SelectorMode) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range selectorModeValueMap {
		if v == text {
			*m = k
			return nil
		}
	}

	return fmt.Errorf("unknown selector mode %q", text)
}

// MarshalText to render the mode back into configs.
func (m SelectorMode) MarshalText() ([]byte, error) {
	v, ok := selectorModeValueMap[m]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid SelectorMode(%d)", m)
	}

	return []byte(v), nil
}

// UnmarshalYAML to read the mode from a YAML scalar.
func (m *SelectorMode) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: selector mode must be a string", node.Line)
	}

	if err := m.UnmarshalText([]byte(node.Value)); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	return nil
}

// Set is for flag.Value.
func (m *SelectorMode) Set(s string) error {
	return m.UnmarshalText([]byte(s))
}

// Type is for pflag.Value.
func (m *SelectorMode) Type() string {
	return "selector"
}

// FuncRef identifies a function or a method of a named type.
type FuncRef struct {
	Package string
	Type    string
	Name    string
}

var _ encoding.TextUnmarshaler = (*FuncRef)(nil)

// UnmarshalText parses references of the form
//
//	"pkg/path".Name
//	"pkg/path".Type.Name
//
// The package is a Go string literal, so paths with dots need no escaping.
func (r *FuncRef) UnmarshalText(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if !strings.HasPrefix(s, `"`) {
		return fmt.Errorf("reference must start with quoted package: %q", s)
	}

	quoted, err := strconv.QuotedPrefix(s)
	if err != nil {
		return fmt.Errorf("bad quoted package in reference %q: %w", s, err)
	}
	pkg, _ := strconv.Unquote(quoted)
	if pkg == "" {
		return fmt.Errorf("package cannot be empty in reference: %q", s)
	}

	selector, ok := strings.CutPrefix(s[len(quoted):], ".")
	if !ok || selector == "" {
		return fmt.Errorf("reference must select a name out of the package: %q", s)
	}

	typeName, name, isMethod := strings.Cut(selector, ".")
	if !isMethod {
		typeName, name = "", selector
	}
	if isMethod && !isIdent(typeName) {
		return fmt.Errorf("invalid type name %q in reference %q", typeName, s)
	}
	if !isIdent(name) {
		return fmt.Errorf("invalid function name %q in reference %q", name, s)
	}

	*r = FuncRef{Package: pkg, Type: typeName, Name: name}
	return nil
}

// MarshalText renders the reference in the form UnmarshalText accepts.
func (r FuncRef) MarshalText() ([]byte, error) {
	switch {
	case r.Package == "":
		return nil, errors.New("cannot marshal function reference without package")
	case r.Name == "":
		return nil, errors.New("cannot marshal function reference without name")
	}

	text := strconv.Quote(r.Package) + "."
	if r.Type != "" {
		text += r.Type + "."
	}

	return []byte(text + r.Name), nil
}

func (r FuncRef) String() string {
	v, err := r.MarshalText()
	if err != nil {
		return fmt.Sprintf("funcref-invalid(%s.%s.%s)", r.Package, r.Type, r.Name)
	}

	return string(v)
}

// UnmarshalYAML to read references from YAML scalars.
func (r *FuncRef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: function reference must be a string", node.Line)
	}

	if err := r.UnmarshalText([]byte(node.Value)); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	return nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
