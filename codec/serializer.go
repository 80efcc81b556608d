package codec

import (
	"bytes"
	"context"
	"fmt"
	"iter"
	"slices"

	"csv-mapper/collection"
	"csv-mapper/lineio"
	"csv-mapper/options"
	"csv-mapper/primitive"
	"csv-mapper/schema"
)

// Serializer writes records of type T to a sink. It is not safe for concurrent use.
type Serializer[T any] struct {
	sink  lineio.Sink
	table *schema.Table[T]
	opts  options.Options

	schema  *schema.Schema[T]
	coercer primitive.Coercer
	buf     bytes.Buffer
}

func NewSerializer[T any](sink lineio.Sink, table *schema.Table[T], opts options.Options) *Serializer[T] {
	return &Serializer[T]{sink: sink, table: table, opts: opts.WithDefaults()}
}

func (s *Serializer[T]) Options() options.Options { return s.opts }

// init validates the options and builds the schema on first use.
func (s *Serializer[T]) init() error {
	if s.schema != nil {
		return nil
	}
	if s.sink == nil {
		return fmt.Errorf("%w: nil sink", options.ErrInvalidArgument)
	}
	if err := s.opts.Validate(); err != nil {
		return err
	}

	sch, err := schema.Build(s.table, s.opts.Filter, s.opts.Delimiter)
	if err != nil {
		return err
	}
	s.schema = sch
	s.coercer = sch.Coercer(primitive.Coercer{
		DecimalSeparator: s.opts.DecimalSeparator,
		TimeLayout:       s.opts.TimeLayout,
	})
	return nil
}

// Serialize writes a header line when the options ask for one, then one line per
// non-nil record, and flushes the sink.
func (s *Serializer[T]) Serialize(ctx context.Context, seq iter.Seq[*T]) error {
	if seq == nil {
		return fmt.Errorf("%w: nil sequence", options.ErrInvalidArgument)
	}
	return s.write(ctx, seq, s.opts.WritesHeader())
}

// SerializeSlice is Serialize over items.
func (s *Serializer[T]) SerializeSlice(ctx context.Context, items []*T) error {
	if items == nil {
		return fmt.Errorf("%w: nil slice", options.ErrInvalidArgument)
	}
	return s.write(ctx, slices.Values(items), s.opts.WritesHeader())
}

// SerializeCollection is Serialize over a snapshot of c.
func (s *Serializer[T]) SerializeCollection(ctx context.Context, c *collection.Collection[T]) error {
	if c == nil {
		return fmt.Errorf("%w: nil collection", options.ErrInvalidArgument)
	}
	return s.write(ctx, slices.Values(c.ToSlice()), s.opts.WritesHeader())
}

// SerializeOne writes a single record line; no header is written.
func (s *Serializer[T]) SerializeOne(ctx context.Context, obj *T) error {
	if obj == nil {
		return fmt.Errorf("%w: nil record", options.ErrInvalidArgument)
	}
	return s.write(ctx, func(yield func(*T) bool) { yield(obj) }, false)
}

func (s *Serializer[T]) write(ctx context.Context, seq iter.Seq[*T], header bool) error {
	if err := s.init(); err != nil {
		return err
	}

	log := s.opts.Logger.WithValues("run", newRunID(), "op", "serialize", "type", s.schema.TypeName())

	if header {
		s.buf.WriteString(s.schema.HeaderLine())
		s.buf.WriteString(s.opts.LineTerminator)
	}

	records, queued := 0, 0
	for obj := range seq {
		if err := ctx.Err(); err != nil {
			s.buf.Reset()
			s.sink.Discard()
			log.V(1).Info("cancelled", "records", records, "buffers", queued)
			return err
		}
		if obj == nil {
			continue
		}

		s.buf.Write(s.schema.AppendLine(s.buf.AvailableBuffer(), obj, s.coercer))
		s.buf.WriteString(s.opts.LineTerminator)
		records++

		if s.buf.Len() > s.opts.FlushThreshold {
			s.sink.Queue(s.buf.Bytes())
			s.buf.Reset()
			queued++
		}
	}

	if s.buf.Len() > 0 {
		s.sink.Queue(s.buf.Bytes())
		s.buf.Reset()
		queued++
	}
	if err := s.sink.Flush(); err != nil {
		return fmt.Errorf("flush %s records: %w", s.schema.TypeName(), err)
	}

	log.V(1).Info("done", "records", records, "buffers", queued, "header", header)
	return nil
}
