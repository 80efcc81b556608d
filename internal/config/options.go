package config

import (
	"fmt"
	"strings"

	"csv-mapper/options"
)

// Options converts the codec section into defaulted engine options. Callers attach
// their own logger.
func (p *Profile) Options() (options.Options, error) {
	c := p.Codec

	mode, err := options.ParseAddressingMode(c.Mode)
	if err != nil {
		return options.Options{}, fmt.Errorf("codec.mode: %w", err)
	}

	headers, err := options.ParseHeadersMode(c.Headers)
	if err != nil {
		return options.Options{}, fmt.Errorf("codec.headers: %w", err)
	}

	filter, err := c.Filter.build()
	if err != nil {
		return options.Options{}, fmt.Errorf("codec.filter: %w", err)
	}

	opts := options.Options{
		Mode:             mode,
		Headers:          headers,
		Filter:           filter,
		Delimiter:        rune(c.Delimiter),
		DecimalSeparator: rune(c.DecimalSeparator),
		TimeLayout:       c.TimeLayout,
		LineTerminator:   c.LineTerminator,
		FlushThreshold:   c.FlushThreshold,
		Workers:          c.Workers,
		StrictFieldCount: c.StrictFieldCount,
		StrictEnums:      c.StrictEnums,
	}

	return opts.WithDefaults(), nil
}

// Validate converts the codec section and checks it the way the engines will, with
// the parallel rules when the profile is marked parallel.
func (p *Profile) Validate() error {
	if p.Version != DefaultVersion {
		return fmt.Errorf("%w: unsupported profile version %q", options.ErrConfiguration, p.Version)
	}

	opts, err := p.Options()
	if err != nil {
		return err
	}

	if p.Codec.Parallel {
		err = opts.ValidateParallel()
	} else {
		err = opts.Validate()
	}
	if err != nil {
		return err
	}

	for i, job := range p.Generate {
		if strings.TrimSpace(job.Package) == "" {
			return fmt.Errorf("%w: generate[%d] has no package", options.ErrInvalidArgument, i)
		}
	}

	return nil
}

func (f *Filter) build() (options.Filter, error) {
	if f == nil {
		return options.Filter{}, nil
	}

	var mode options.FilterMode
	switch strings.ToLower(strings.TrimSpace(f.Mode)) {
	case "ignore":
		mode = options.FilterModeIgnore
	case "include":
		mode = options.FilterModeInclude
	default:
		return options.Filter{}, fmt.Errorf("%w: unknown filter mode %q", options.ErrInvalidArgument, f.Mode)
	}

	var scope options.FilterScope
	switch strings.ToLower(strings.TrimSpace(f.Scope)) {
	case "name", "":
		scope = options.FilterScopeName
	case "type":
		scope = options.FilterScopeType
	default:
		return options.Filter{}, fmt.Errorf("%w: unknown filter scope %q", options.ErrInvalidArgument, f.Scope)
	}

	return options.NewFilter(mode, scope, f.Values...)
}
