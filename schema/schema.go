package schema

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"csv-mapper/options"
	"csv-mapper/primitive"
)

// Field describes one field of a built schema.
type Field struct {
	Name string
	Type primitive.Type
	// Ordinal is the zero-based declaration index.
	Ordinal int
	// Position is the index within a delimited line, or -1 for ignored fields.
	Position int
	Ignored  bool
}

func (f Field) String() string {
	return fmt.Sprintf("%s, %s, %d, %d, %t", f.Name, f.Type, f.Ordinal, f.Position, f.Ignored)
}

// Schema is the ordered, filtered field list of one record type for one delimiter.
// It is immutable once built and safe for concurrent readers.
type Schema[T any] struct {
	typeName  string
	delimiter rune
	filter    options.Filter
	fields    []Field
	access    []Accessor[T]
	included  []int
	byName    map[string]int
	invariant bool
}

// Build derives a schema from a field table. Fields keep declaration order; a field is
// ignored when the filter matches it in Ignore mode or misses it in Include mode.
func Build[T any](table *Table[T], filter options.Filter, delimiter rune) (*Schema[T], error) {
	if table == nil {
		return nil, fmt.Errorf("%w: nil field table", options.ErrInvalidArgument)
	}
	if delimiter == 0 {
		return nil, fmt.Errorf("%w: zero delimiter", options.ErrInvalidArgument)
	}

	s := &Schema[T]{
		typeName:  table.typeName,
		delimiter: delimiter,
		filter:    filter,
		fields:    make([]Field, 0, len(table.columns)),
		access:    make([]Accessor[T], 0, len(table.columns)),
		byName:    make(map[string]int, len(table.columns)),
	}

	for i, col := range table.columns {
		if col.Name == "" {
			return nil, fmt.Errorf("%w: %s column %d has no name", options.ErrInvalidArgument, table.typeName, i)
		}
		if _, dup := s.byName[col.Name]; dup {
			return nil, fmt.Errorf("%w: %s declares column %q twice", options.ErrInvalidArgument, table.typeName, col.Name)
		}
		if col.Access.Get == nil || col.Access.Set == nil {
			return nil, fmt.Errorf("%w: %s.%s has no accessor", options.ErrInvalidArgument, table.typeName, col.Name)
		}

		f := Field{
			Name:     col.Name,
			Type:     col.Type,
			Ordinal:  i,
			Position: -1,
			Ignored:  filter.Ignores(col.Name, col.Type.Name),
		}
		if !f.Ignored {
			f.Position = len(s.included)
			s.included = append(s.included, i)
			if col.Type.Kind.IsFractional() {
				s.invariant = true
			}
		}

		s.byName[col.Name] = i
		s.fields = append(s.fields, f)
		s.access = append(s.access, col.Access)
	}

	// a comma delimiter collides with comma decimal separators
	s.invariant = s.invariant && delimiter == ','

	return s, nil
}

func (s *Schema[T]) TypeName() string { return s.typeName }

func (s *Schema[T]) Delimiter() rune { return s.delimiter }

func (s *Schema[T]) Filter() options.Filter { return s.filter }

// RequiresInvariantFormatting is true when the delimiter is a comma and an included
// field is fractional.
func (s *Schema[T]) RequiresInvariantFormatting() bool { return s.invariant }

// Len is the number of declared fields, ignored ones included.
func (s *Schema[T]) Len() int { return len(s.fields) }

// Count is the number of included fields, which is the field count of an ordinal line.
func (s *Schema[T]) Count() int { return len(s.included) }

// Fields returns all fields in declaration order.
func (s *Schema[T]) Fields() []Field { return slices.Clone(s.fields) }

// Included returns the included fields in line order.
func (s *Schema[T]) Included() []Field {
	out := make([]Field, len(s.included))
	for i, idx := range s.included {
		out[i] = s.fields[idx]
	}
	return out
}

// At returns the included field at a line position.
func (s *Schema[T]) At(position int) (Field, bool) {
	if position < 0 || position >= len(s.included) {
		return Field{}, false
	}
	return s.fields[s.included[position]], true
}

// Lookup finds a field by its exact name, ignored or not.
func (s *Schema[T]) Lookup(name string) (Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Headers returns the included field names in line order.
func (s *Schema[T]) Headers() []string {
	out := make([]string, len(s.included))
	for i, idx := range s.included {
		out[i] = s.fields[idx].Name
	}
	return out
}

// HeaderLine joins Headers with the delimiter.
func (s *Schema[T]) HeaderLine() string {
	return strings.Join(s.Headers(), string(s.delimiter))
}

// Value reads a field of obj as a canonical value.
func (s *Schema[T]) Value(obj *T, f Field) any {
	return s.access[f.Ordinal].Get(obj)
}

// Set writes a canonical value into a field of obj.
func (s *Schema[T]) Set(obj *T, f Field, v any) error {
	if err := s.access[f.Ordinal].Set(obj, v); err != nil {
		return fmt.Errorf("set %s.%s: %w", s.typeName, f.Name, err)
	}
	return nil
}

// Values appends the included values of obj to dst in line order.
func (s *Schema[T]) Values(dst []any, obj *T) []any {
	for _, idx := range s.included {
		dst = append(dst, s.access[idx].Get(obj))
	}
	return dst
}

// Coercer returns c adjusted to the schema: invariant formatting is forced when the
// delimiter would collide with a comma decimal separator.
func (s *Schema[T]) Coercer(c primitive.Coercer) primitive.Coercer {
	if s.invariant {
		c.Invariant = true
	}
	return c
}

// AppendLine appends the included fields of obj as one delimited line without a
// line terminator.
func (s *Schema[T]) AppendLine(dst []byte, obj *T, c primitive.Coercer) []byte {
	c = s.Coercer(c)
	for i, idx := range s.included {
		if i > 0 {
			dst = utf8.AppendRune(dst, s.delimiter)
		}
		dst = c.AppendFormat(dst, s.access[idx].Get(obj), s.fields[idx].Type)
	}
	return dst
}
