package codec

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"csv-mapper/lineio"
	"csv-mapper/options"
	"csv-mapper/schema"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

// Deserializer reads records of type T from a line source.
type Deserializer[T any] struct {
	src   lineio.Source
	table *schema.Table[T]
	opts  options.Options
}

// NewDeserializer binds a source to a field table. Options are copied with defaults
// applied; they are validated when reading starts.
func NewDeserializer[T any](src lineio.Source, table *schema.Table[T], opts options.Options) *Deserializer[T] {
	return &Deserializer[T]{src: src, table: table, opts: opts.WithDefaults()}
}

func (d *Deserializer[T]) Options() options.Options { return d.opts }

// Schema builds the schema the deserializer reads with.
func (d *Deserializer[T]) Schema() (*schema.Schema[T], error) {
	if d.src == nil {
		return nil, fmt.Errorf("%w: nil line source", options.ErrInvalidArgument)
	}
	return schema.Build(d.table, d.opts.Filter, d.opts.Delimiter)
}

func (d *Deserializer[T]) prepare(parallel bool) (*schema.Schema[T], error) {
	validate := d.opts.Validate
	if parallel {
		validate = d.opts.ValidateParallel
	}
	if err := validate(); err != nil {
		return nil, err
	}
	return d.Schema()
}

func (d *Deserializer[T]) runLogger(op string, s *schema.Schema[T]) logr.Logger {
	return d.opts.Logger.WithValues("run", newRunID(), "op", op, "type", s.TypeName())
}

// newRunID tags the log lines of one read or write.
func newRunID() string {
	return uuid.NewString()
}

// Records validates the options, builds the schema and returns a lazy sequence with
// one element per data line. Records that fail conversion are yielded as (nil,
// *RecordError) and the sequence goes on; a source error ends it. Every call to the
// returned sequence reads the source again.
func (d *Deserializer[T]) Records(ctx context.Context) (iter.Seq2[*T, error], error) {
	s, err := d.prepare(false)
	if err != nil {
		return nil, err
	}

	return func(yield func(*T, error) bool) {
		log := d.runLogger("deserialize", s)
		dec := newDecoder(s, d.opts, log)
		log.V(1).Info("start", "mode", d.opts.Mode, "headers", d.opts.Headers, "fields", s.Count())

		var lineNo, records, failed int
		defer func() {
			log.V(1).Info("done", "lines", lineNo, "records", records, "failed", failed)
		}()

		for line, err := range d.src.Lines(ctx) {
			if err != nil {
				yield(nil, err)
				return
			}
			lineNo++
			if dec.consume(line) {
				continue
			}

			obj, err := dec.decode(line, lineNo)
			switch {
			case err != nil:
				failed++
				if !yield(nil, err) {
					return
				}
			case obj != nil:
				records++
				if !yield(obj, nil) {
					return
				}
			}
		}
	}, nil
}

// Collect reads every record. Per-line errors are joined into the returned error
// alongside the records that did decode.
func (d *Deserializer[T]) Collect(ctx context.Context) ([]*T, error) {
	return d.AppendTo(ctx, nil)
}

// AppendTo appends every record to dst, like Collect.
func (d *Deserializer[T]) AppendTo(ctx context.Context, dst []*T) ([]*T, error) {
	err := d.each(ctx, func(obj *T) { dst = append(dst, obj) })
	return dst, err
}

func (d *Deserializer[T]) each(ctx context.Context, fn func(*T)) error {
	seq, err := d.Records(ctx)
	if err != nil {
		return err
	}

	var errs []error
	for obj, err := range seq {
		if err != nil {
			errs = append(errs, err)
			if !isRecordError(err) {
				break
			}
			continue
		}
		fn(obj)
	}
	return errors.Join(errs...)
}
