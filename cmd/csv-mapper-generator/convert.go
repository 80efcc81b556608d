package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"csv-mapper/codec"
	"csv-mapper/internal/config"
	"csv-mapper/lineio"
	"csv-mapper/options"
	"csv-mapper/schema"
)

func runConvert(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	profile := fs.String("config", "", "YAML profile describing the input file")
	in := fs.String("in", "", "Input file path")
	out := fs.String("out", "", "Output file path")
	delimiter := fs.String("delimiter", "", "Output delimiter; defaults to the input delimiter")
	noHeader := fs.Bool("no-header", false, "Write no header line")
	verbosity := fs.Int("v", 0, "Log verbosity")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *profile == "" || *in == "" || *out == "" {
		_, _ = fmt.Fprintln(stderr, "convert requires -config, -in and -out")
		return 2
	}

	p, err := config.LoadFile(*profile)
	if err == nil {
		err = p.Validate()
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "config error: %s\n", err)
		return 2
	}

	inOpts, err := p.Options()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "config error: %s\n", err)
		return 2
	}
	inOpts.Logger = newLogger(stderr, *verbosity)

	outOpts := inOpts
	if *delimiter != "" {
		r, size := utf8.DecodeRuneInString(*delimiter)
		if size != len(*delimiter) {
			_, _ = fmt.Fprintf(stderr, "-delimiter must be one character, got %q\n", *delimiter)
			return 2
		}
		outOpts.Delimiter = r
	}

	n, err := convert(ctx, lineio.NewFile(*in), lineio.NewFileSink(*out), inOpts, outOpts, !*noHeader)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "convert failed: %s\n", err)
		return 1
	}

	_, _ = fmt.Fprintf(stdout, "converted %d records\n", n)
	return 0
}

// convert copies rows from src to sink as string rows. Column names come from the
// first line when the input carries a header and are numbered otherwise. Record
// errors are reported after the remaining rows are written.
func convert(ctx context.Context, src lineio.Source, sink lineio.Sink, inOpts, outOpts options.Options, header bool) (int, error) {
	names, err := columnNames(ctx, src, inOpts)
	if err != nil {
		return 0, errors.Join(err, sink.Close())
	}
	table := schema.RowTable(names...)

	d := codec.NewDeserializer(src, table, inOpts)
	records, err := d.Records(ctx)
	if err != nil {
		return 0, errors.Join(err, sink.Close())
	}

	outOpts.Mode, outOpts.Headers = options.AddressingOrdinal, options.HeadersNone
	if header {
		outOpts.Mode, outOpts.Headers = options.AddressingHeader, options.HeadersFromType
	}

	var (
		n    int
		errs []error
	)
	rows := func(yield func(*schema.Row) bool) {
		for row, err := range records {
			if err != nil {
				errs = append(errs, err)
				continue
			}
			n++
			if !yield(row) {
				return
			}
		}
	}

	err = codec.NewSerializer(sink, table, outOpts).Serialize(ctx, rows)
	errs = append(errs, err, sink.Close())

	return n, errors.Join(errs...)
}

func columnNames(ctx context.Context, src lineio.Source, opts options.Options) ([]string, error) {
	var first string
	for line, err := range lineio.Block(src, 0, 1).Lines(ctx) {
		if err != nil {
			return nil, err
		}
		first = line
	}
	if first == "" {
		return nil, fmt.Errorf("%w: empty input", options.ErrInvalidArgument)
	}

	fields := strings.Split(first, string(opts.Delimiter))
	names := make([]string, len(fields))
	for i, f := range fields {
		name := strings.TrimSpace(f)
		if opts.Headers == options.HeadersNone || opts.Headers == options.HeadersFromType || name == "" {
			name = fmt.Sprintf("col%d", i+1)
		}
		names[i] = name
	}

	return names, nil
}
