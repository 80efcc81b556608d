// Package main provides the CLI entrypoint for csv-mapper-generator.
//
// csv-mapper-generator:
//   - Parses Go packages (go/types) and writes reflection-free field tables for
//     their record structs and enums
//   - Checks YAML codec profiles
//   - Converts delimited files between profiles without a generated type
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}

	switch args[0] {
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	case "gen":
		return runGen(args[1:], stdout, stderr)
	case "check":
		return runCheck(args[1:], stdout, stderr)
	case "convert":
		return runConvert(ctx, args[1:], stdout, stderr)
	default:
		_, _ = fmt.Fprintf(stderr, "unknown command: %s\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	_, _ = fmt.Fprint(w, `csv-mapper-generator - field tables and tooling for delimited record files

Commands:
  gen      -pkg <pattern> [-types A,B] [-out dir] [-config profile.yaml]
  check    -config profile.yaml
  convert  -config profile.yaml -in <file> -out <file> [-delimiter c] [-no-header]

Files ending in .zst are read and written zstd-compressed.
Every command accepts -v <level> for log verbosity.
`)
}

// newLogger writes through the standard log package at the given verbosity.
func newLogger(w io.Writer, verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	return stdr.New(log.New(w, "", log.LstdFlags))
}
