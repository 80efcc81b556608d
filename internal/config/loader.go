package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"csv-mapper/options"
)

const (
	DefaultVersion  = "1"
	DefaultFilename = "csvfields_gen.go"
)

// LoadFile loads and parses a YAML profile from the given path.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Profile.
func Parse(data []byte) (*Profile, error) {
	var p Profile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	applyDefaults(&p)

	return &p, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(p *Profile) {
	if p.Version == "" {
		p.Version = DefaultVersion
	}

	c := &p.Codec
	if c.Mode == "" {
		c.Mode = "ordinal"
	}
	if c.Headers == "" {
		c.Headers = "none"
	}
	if c.Delimiter == 0 {
		c.Delimiter = options.DefaultDelimiter
	}
	if c.FlushThreshold <= 0 {
		c.FlushThreshold = options.DefaultFlushThreshold
	}

	for i := range p.Generate {
		if p.Generate[i].File == "" {
			p.Generate[i].File = DefaultFilename
		}
	}
}

// Marshal serializes a Profile to YAML.
func Marshal(p *Profile) ([]byte, error) {
	return yaml.Marshal(p)
}

// WriteFile writes a Profile to the given path.
func WriteFile(p *Profile, path string) error {
	data, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", path, err)
	}

	return nil
}
