package codec

import (
	"errors"
	"fmt"
	"strings"

	"csv-mapper/internal/match"
	"csv-mapper/options"
	"csv-mapper/primitive"
	"csv-mapper/schema"

	"github.com/go-logr/logr"
)

// decoder turns single lines into records. Only header handling mutates it, so after
// the header is settled decode may run on many goroutines.
type decoder[T any] struct {
	schema  *schema.Schema[T]
	coercer primitive.Coercer
	opts    options.Options
	log     logr.Logger

	sep      string
	fields   []schema.Field
	included []schema.Field
	// columns maps a line position to a field ordinal, -1 for skipped positions.
	// Nil until the header is known in header addressing.
	columns []int
	// pending is true while the first line still has to be consumed as a header or
	// discarded.
	pending bool
}

func newDecoder[T any](s *schema.Schema[T], opts options.Options, log logr.Logger) *decoder[T] {
	c := primitive.Coercer{
		StrictEnums:      opts.StrictEnums,
		DecimalSeparator: opts.DecimalSeparator,
		TimeLayout:       opts.TimeLayout,
	}
	d := &decoder[T]{
		schema:   s,
		coercer:  s.Coercer(c),
		opts:     opts,
		log:      log,
		sep:      string(s.Delimiter()),
		fields:   s.Fields(),
		included: s.Included(),
	}

	switch opts.Headers {
	case options.HeadersFromFile, options.HeadersOrdinalIgnore:
		d.pending = true
	case options.HeadersFromType:
		for _, f := range d.included {
			d.columns = append(d.columns, f.Ordinal)
		}
	}
	return d
}

// consume handles the first line when it is a header or has to be discarded. It
// reports whether the line was consumed.
func (d *decoder[T]) consume(line string) bool {
	if !d.pending {
		return false
	}
	d.pending = false

	if d.opts.Headers == options.HeadersOrdinalIgnore {
		d.log.V(2).Info("first line discarded", "line", line)
		return true
	}

	names := strings.Split(line, d.sep)
	d.columns = make([]int, len(names))
	for i, name := range names {
		d.columns[i] = -1
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, ok := d.schema.Lookup(name)
		if !ok {
			kv := []any{"position", i, "name", name}
			if guess, found := match.Closest(name, d.schema.Headers(), match.DefaultThreshold); found {
				kv = append(kv, "closest", guess)
			}
			d.log.V(1).Info("unknown header column", kv...)
			continue
		}
		if f.Ignored {
			d.log.V(1).Info("header column ignored", "position", i, "name", name)
			continue
		}
		d.columns[i] = f.Ordinal
	}
	return true
}

// decode converts one data line. A nil record with a nil error means the line was
// skipped.
func (d *decoder[T]) decode(line string, lineNo int) (*T, error) {
	values := strings.Split(line, d.sep)

	if d.opts.Mode == options.AddressingHeader {
		return d.decodeHeader(values, lineNo)
	}
	return d.decodeOrdinal(values, lineNo)
}

func (d *decoder[T]) decodeOrdinal(values []string, lineNo int) (*T, error) {
	if len(values) != d.schema.Count() {
		if d.opts.StrictFieldCount {
			return nil, &RecordError{
				Line: lineNo,
				Err:  fmt.Errorf("%w: got %d fields, want %d", ErrFieldCount, len(values), d.schema.Count()),
			}
		}
		d.log.V(1).Info("line skipped", "line", lineNo, "fields", len(values), "want", d.schema.Count())
		return nil, nil
	}

	obj := new(T)
	for i, f := range d.included {
		if err := d.assign(obj, f, values[i]); err != nil {
			return nil, &RecordError{Line: lineNo, Err: err}
		}
	}
	return obj, nil
}

func (d *decoder[T]) decodeHeader(values []string, lineNo int) (*T, error) {
	obj := new(T)
	for i, ord := range d.columns {
		if i >= len(values) {
			break
		}
		if ord < 0 {
			continue
		}
		if err := d.assign(obj, d.fields[ord], values[i]); err != nil {
			return nil, &RecordError{Line: lineNo, Err: err}
		}
	}
	return obj, nil
}

func (d *decoder[T]) assign(obj *T, f schema.Field, text string) error {
	v, err := d.coercer.Parse(text, f.Type)
	if err != nil {
		var ce *primitive.ConversionError
		if errors.As(err, &ce) {
			ce.Field = f.Name
		}
		return err
	}

	if f.Type.Kind == primitive.KindPrimitiveEnum && v != nil && f.Type.Enum != nil {
		if _, ok := f.Type.Enum.Lookup(strings.TrimSpace(text)); !ok {
			d.log.V(1).Info("unknown enum member, using zero value", "field", f.Name, "text", text)
		}
	}

	return d.schema.Set(obj, f, v)
}
