package main

import (
	"flag"
	"fmt"
	"io"

	"csv-mapper/internal/config"
)

func runCheck(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	profile := fs.String("config", "", "YAML profile to validate")
	verbosity := fs.Int("v", 0, "Log verbosity")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *profile == "" {
		_, _ = fmt.Fprintln(stderr, "check requires -config")
		return 2
	}

	logger := newLogger(stderr, *verbosity)

	p, err := config.LoadFile(*profile)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "config error: %s\n", err)
		return 2
	}
	if err := p.Validate(); err != nil {
		_, _ = fmt.Fprintf(stderr, "%s: %s\n", *profile, err)
		return 1
	}

	opts, err := p.Options()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%s: %s\n", *profile, err)
		return 1
	}
	logger.V(1).Info("profile ok", "path", *profile,
		"mode", opts.Mode.String(), "headers", opts.Headers.String(), "filter", opts.Filter.String(),
		"parallel", p.Codec.Parallel, "jobs", len(p.Generate))

	_, _ = fmt.Fprintf(stdout, "%s: ok\n", *profile)
	return 0
}
