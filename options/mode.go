package options

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=AddressingMode,HeadersMode,FilterScope,FilterMode -output=mode_string.go

// AddressingMode selects how line fields are matched to schema fields.
type AddressingMode int

const (
	AddressingOrdinal AddressingMode = iota // by position
	AddressingHeader                        // by name, through a header line
)

// HeadersMode selects where header names come from.
type HeadersMode int

const (
	HeadersNone          HeadersMode = iota // no header line
	HeadersFromFile                         // first line of the source
	HeadersFromType                         // synthesized from the schema, no line consumed
	HeadersOrdinalIgnore                    // first line consumed and discarded
)

var addressingNames = map[string]AddressingMode{
	"ordinal": AddressingOrdinal,
	"header":  AddressingHeader,
}

var headersNames = map[string]HeadersMode{
	"none":           HeadersNone,
	"from_file":      HeadersFromFile,
	"from_type":      HeadersFromType,
	"ordinal_ignore": HeadersOrdinalIgnore,
}

// ParseAddressingMode accepts "ordinal" or "header" in any case.
func ParseAddressingMode(s string) (AddressingMode, error) {
	m, ok := addressingNames[normalizeName(s)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown addressing mode %q", ErrInvalidArgument, s)
	}
	return m, nil
}

// ParseHeadersMode accepts "none", "from_file", "from_type" or "ordinal_ignore".
func ParseHeadersMode(s string) (HeadersMode, error) {
	m, ok := headersNames[normalizeName(s)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown headers mode %q", ErrInvalidArgument, s)
	}
	return m, nil
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}
