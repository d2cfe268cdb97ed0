package config

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/haikulint/internal/haiku"
	"github.com/sirkon/haikulint/internal/syllables"
)

const (
	// DefaultPrefix is the name prefix of poetic definitions.
	DefaultPrefix = "poetic"

	// DefaultMarker is the literal substring that makes a call poetic.
	DefaultMarker = "poet"
)

// Config is haikulint configuration.
type Config struct {
	Prefix      string        `yaml:"prefix"`
	Marker      string        `yaml:"marker"`
	Selector    SelectorMode  `yaml:"selector"`
	RequireDoc  bool          `yaml:"require_doc"`
	OutputFuncs []FuncRef     `yaml:"output_funcs"`
	Overrides   OverrideTable `yaml:"overrides"`
	Debug       bool          `yaml:"debug"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Prefix:   DefaultPrefix,
		Marker:   DefaultMarker,
		Selector: SelectorModePrefix,
	}
}

// Load reads configuration from a YAML file. Missing settings keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Parse reads configuration from YAML data.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	switch c.Selector {
	case SelectorModePrefix, SelectorModePrefixOrCall, SelectorModePrefixAndCall:
		if c.Prefix == "" {
			return fmt.Errorf("selector mode %s needs a non-empty prefix", c.Selector)
		}
	case SelectorModeCall:
	default:
		return fmt.Errorf("invalid selector mode %s", c.Selector)
	}

	switch c.Selector {
	case SelectorModeCall, SelectorModePrefixOrCall, SelectorModePrefixAndCall:
		if c.Marker == "" {
			return fmt.Errorf("selector mode %s needs a non-empty marker", c.Selector)
		}
	}

	for word, count := range c.Overrides {
		if count < 1 {
			return fmt.Errorf("override %q must have a positive syllable count, got %d", word, count)
		}
	}

	return nil
}

// Session is everything needed to validate definitions, built once per run.
type Session struct {
	Validator   *haiku.Validator
	Estimator   *syllables.Estimator
	Overrides   *syllables.Overrides
	RequireDoc  bool
	OutputFuncs []FuncRef
}

// Session builds a validation session out of the configuration.
func (c *Config) Session() (*Session, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	overrides, err := syllables.NewOverrides(c.Overrides)
	if err != nil {
		return nil, fmt.Errorf("build syllable overrides: %w", err)
	}

	estimator := syllables.NewEstimator(overrides)
	return &Session{
		Validator:   haiku.NewValidator(c.subjectSelector(), estimator),
		Estimator:   estimator,
		Overrides:   overrides,
		RequireDoc:  c.RequireDoc,
		OutputFuncs: slices.Clone(c.OutputFuncs),
	}, nil
}

func (c *Config) subjectSelector() haiku.Selector {
	switch c.Selector {
	case SelectorModeCall:
		return haiku.CallsWithLiteral(c.Marker)
	case SelectorModePrefixOrCall:
		return haiku.AnyOf(haiku.HasPrefix(c.Prefix), haiku.CallsWithLiteral(c.Marker))
	case SelectorModePrefixAndCall:
		return haiku.AllOf(haiku.HasPrefix(c.Prefix), haiku.CallsWithLiteral(c.Marker))
	default:
		return haiku.HasPrefix(c.Prefix)
	}
}

// OverrideTable is a word → syllables mapping that can also be filled with word=count flags.
type OverrideTable map[string]int

// Set parses word=count and adds it to the table.
func (t *OverrideTable) Set(s string) error {
	word, rawCount, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("override must look like word=count, got %q", s)
	}

	word = foldWord(word)
	if word == "" {
		return fmt.Errorf("empty word in override %q", s)
	}

	count, err := strconv.Atoi(strings.TrimSpace(rawCount))
	if err != nil {
		return fmt.Errorf("parse syllable count of override %q: %w", s, err)
	}
	if count < 1 {
		return fmt.Errorf("override %q must have a positive syllable count", s)
	}

	if *t == nil {
		*t = OverrideTable{}
	}
	(*t)[word] = count
	return nil
}

// UnmarshalYAML reads a word: count mapping. Words are folded to lowercase, two keys folding
// into the same word are an error.
func (t *OverrideTable) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: overrides must be a word: count mapping", node.Line)
	}

	table := make(OverrideTable, len(node.Content)/2)
	origin := make(map[string]string, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		word := foldWord(key.Value)
		if word == "" {
			return fmt.Errorf("line %d: empty override word", key.Line)
		}
		if prev, ok := origin[word]; ok {
			return fmt.Errorf("line %d: override %q repeats %q", key.Line, key.Value, prev)
		}

		var count int
		if err := value.Decode(&count); err != nil {
			return fmt.Errorf("line %d: syllable count of override %q: %w", value.Line, key.Value, err)
		}

		origin[word] = key.Value
		table[word] = count
	}

	*t = table
	return nil
}

func (t *OverrideTable) String() string {
	if t == nil || len(*t) == 0 {
		return ""
	}

	var parts []string
	for _, word := range slices.Sorted(maps.Keys(*t)) {
		parts = append(parts, word+"="+strconv.Itoa((*t)[word]))
	}

	return strings.Join(parts, ",")
}

// Type is for pflag.Value.
func (t *OverrideTable) Type() string {
	return "word=count"
}

func foldWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
