package lineio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"sync/atomic"

	"github.com/klauspost/compress/zstd"
)

// Source produces the lines of a delimited text. Every call to Lines starts a fresh,
// single-pass read.
type Source interface {
	Lines(ctx context.Context) iter.Seq2[string, error]
}

// File reads lines from a file on disk.
type File struct {
	Path string
	// KeepBlank yields whitespace-only lines as empty strings instead of skipping them.
	KeepBlank bool

	read atomic.Int64
}

func NewFile(path string) *File {
	return &File{Path: path}
}

// LinesRead is the number of physical lines consumed by the most recent read,
// skipped blank lines included.
func (f *File) LinesRead() int {
	return int(f.read.Load())
}

func (f *File) Lines(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		r, err := openFile(f.Path)
		if err != nil {
			yield("", err)
			return
		}
		defer r.Close()

		n, _ := scan(ctx, r, f.KeepBlank, yield)
		f.read.Store(int64(n))
	}
}

func openFile(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if !isZstd(path) {
		return file, nil
	}

	dec, err := zstd.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("zstd reader for %s: %w", path, err)
	}
	return &zstdReadCloser{Decoder: dec, file: file}, nil
}

type zstdReadCloser struct {
	*zstd.Decoder
	file *os.File
}

func (z *zstdReadCloser) Close() error {
	z.Decoder.Close()
	return z.file.Close()
}

func isZstd(path string) bool {
	return strings.HasSuffix(path, ".zst")
}

// Reader reads lines from in-memory text.
type Reader struct {
	open      func() io.Reader
	KeepBlank bool
}

// FromString returns a Source over s.
func FromString(s string) *Reader {
	return &Reader{open: func() io.Reader { return strings.NewReader(s) }}
}

// FromLines returns a Source over the given lines.
func FromLines(lines ...string) *Reader {
	return FromString(strings.Join(lines, "\n"))
}

func (r *Reader) Lines(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		scan(ctx, r.open(), r.KeepBlank, yield)
	}
}

// scan yields the trimmed lines of r and returns the number of physical lines read.
// Lines have no length limit.
func scan(ctx context.Context, r io.Reader, keepBlank bool, yield func(string, error) bool) (int, bool) {
	br := bufio.NewReaderSize(r, 64*1024)

	n := 0
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			yield("", fmt.Errorf("read line %d: %w", n+1, readErr))
			return n, false
		}
		if readErr == io.EOF && raw == "" {
			return n, true
		}

		if err := ctx.Err(); err != nil {
			yield("", err)
			return n, false
		}
		n++

		line := strings.TrimSpace(raw)
		if line != "" || keepBlank {
			if !yield(line, nil) {
				return n, false
			}
		}

		if readErr == io.EOF {
			return n, true
		}
	}
}

// Block restricts src to the lines with index in [from, to), counted over the lines
// src yields. A negative to means no upper bound.
func Block(src Source, from, to int) Source {
	return &block{src: src, from: from, to: to}
}

type block struct {
	src      Source
	from, to int
}

func (b *block) Lines(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if b.from < 0 || (b.to >= 0 && b.to < b.from) {
			return
		}
		i := -1
		for line, err := range b.src.Lines(ctx) {
			if err != nil {
				yield("", err)
				return
			}
			i++
			if i < b.from {
				continue
			}
			if b.to >= 0 && i >= b.to {
				return
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}
