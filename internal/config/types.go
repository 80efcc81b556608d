package config

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"csv-mapper/internal/common"
)

// Profile is the root of a YAML profile file.
type Profile struct {
	Version  string        `yaml:"version"`
	Codec    Codec         `yaml:"codec"`
	Generate []GenerateJob `yaml:"generate,omitempty"`
}

// Codec holds codec settings in their textual form; see Profile.Options.
type Codec struct {
	Mode             string  `yaml:"mode"`
	Headers          string  `yaml:"headers"`
	Delimiter        Rune    `yaml:"delimiter"`
	DecimalSeparator Rune    `yaml:"decimal_separator,omitempty"`
	TimeLayout       string  `yaml:"time_layout,omitempty"`
	LineTerminator   string  `yaml:"line_terminator,omitempty"`
	FlushThreshold   int     `yaml:"flush_threshold"`
	Workers          int     `yaml:"workers,omitempty"`
	StrictFieldCount bool    `yaml:"strict_field_count,omitempty"`
	StrictEnums      bool    `yaml:"strict_enums,omitempty"`
	Parallel         bool    `yaml:"parallel,omitempty"` // checked with the parallel rules
	Filter           *Filter `yaml:"filter,omitempty"`
}

// Filter is the textual form of options.Filter.
type Filter struct {
	Mode   string        `yaml:"mode"`  // ignore | include
	Scope  string        `yaml:"scope"` // name | type
	Values StringOrArray `yaml:"values"`
}

// GenerateJob is one generator invocation.
type GenerateJob struct {
	Package    string        `yaml:"package"`
	Types      StringOrArray `yaml:"types,omitempty"`
	Out        string        `yaml:"out,omitempty"`
	File       string        `yaml:"file"`
	NoComments bool          `yaml:"no_comments,omitempty"`
}

// StringOrArray accepts either a single string or a list of strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// Rune is a single character written as a one-character YAML string.
type Rune rune

// UnmarshalYAML accepts exactly one character; "\t" style escapes follow YAML
// double-quoted string rules.
func (r *Rune) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return err
	}

	if str == "" {
		*r = 0
		return nil
	}

	c, size := utf8.DecodeRuneInString(str)
	if size != len(str) || c == utf8.RuneError {
		return fmt.Errorf("line %d: expected a single character, got %q", node.Line, str)
	}

	*r = Rune(c)

	return nil
}

// MarshalYAML implements custom YAML marshaling for Rune.
func (r Rune) MarshalYAML() (any, error) {
	if r == 0 {
		return "", nil
	}

	return string(rune(r)), nil
}
