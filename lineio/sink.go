package lineio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/klauspost/compress/zstd"
)

// ErrClosed is returned by Flush on a closed FileSink.
var ErrClosed = errors.New("sink closed")

// Sink persists the buffers handed to it. Queue takes a copy of p; nothing is
// written before Flush. Discard drops the buffers queued since the last Flush.
type Sink interface {
	Queue(p []byte)
	Discard()
	Flush() error
	Close() error
}

// FileSink writes to a file that is created, or truncated, on the first Flush.
type FileSink struct {
	path  string
	queue [][]byte

	file   *os.File
	w      *bufio.Writer
	enc    *zstd.Encoder
	out    io.Writer
	closed bool
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Path() string { return s.path }

func (s *FileSink) Queue(p []byte) {
	s.queue = append(s.queue, slices.Clone(p))
}

func (s *FileSink) Discard() {
	clear(s.queue)
	s.queue = s.queue[:0]
}

func (s *FileSink) open() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", s.path, err)
	}
	s.file = f
	s.w = bufio.NewWriter(f)
	s.out = s.w

	if isZstd(s.path) {
		enc, err := zstd.NewWriter(s.w)
		if err != nil {
			f.Close()
			return fmt.Errorf("zstd writer for %s: %w", s.path, err)
		}
		s.enc = enc
		s.out = enc
	}
	return nil
}

func (s *FileSink) Flush() error {
	if s.closed {
		return fmt.Errorf("flush %s: %w", s.path, ErrClosed)
	}
	if s.file == nil {
		if err := s.open(); err != nil {
			return err
		}
	}

	for len(s.queue) > 0 {
		if _, err := s.out.Write(s.queue[0]); err != nil {
			return fmt.Errorf("write %s: %w", s.path, err)
		}
		s.queue[0] = nil
		s.queue = s.queue[1:]
	}

	if s.enc != nil {
		if err := s.enc.Flush(); err != nil {
			return fmt.Errorf("flush %s: %w", s.path, err)
		}
	}
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", s.path, err)
	}
	return nil
}

// Close flushes pending buffers and closes the file. Later Flush calls fail with
// ErrClosed; later Close calls do nothing.
func (s *FileSink) Close() error {
	if s.closed {
		return nil
	}
	if s.file == nil && len(s.queue) == 0 {
		s.closed = true
		return nil
	}

	err := s.Flush()
	s.closed = true
	if s.enc != nil {
		err = errors.Join(err, s.enc.Close())
		err = errors.Join(err, s.w.Flush())
	}
	if s.file != nil {
		err = errors.Join(err, s.file.Close())
	}
	s.queue, s.file, s.w, s.enc, s.out = nil, nil, nil, nil, nil
	return err
}

// MemorySink keeps flushed output in memory.
type MemorySink struct {
	queue   [][]byte
	buf     bytes.Buffer
	Flushes int
}

func (m *MemorySink) Queue(p []byte) {
	m.queue = append(m.queue, slices.Clone(p))
}

func (m *MemorySink) Discard() {
	clear(m.queue)
	m.queue = m.queue[:0]
}

func (m *MemorySink) Flush() error {
	for _, p := range m.queue {
		m.buf.Write(p)
	}
	m.queue = m.queue[:0]
	m.Flushes++
	return nil
}

func (m *MemorySink) Close() error { return m.Flush() }

// Pending is the number of queued, unflushed buffers.
func (m *MemorySink) Pending() int { return len(m.queue) }

func (m *MemorySink) Bytes() []byte { return m.buf.Bytes() }

func (m *MemorySink) String() string { return m.buf.String() }
