package schema

import (
	"errors"
	"fmt"
	"slices"

	"csv-mapper/primitive"
)

// ErrValueType is returned by accessors handed a value of the wrong Go type.
var ErrValueType = errors.New("value type mismatch")

// Accessor reads and writes one field of T using canonical values (see primitive.Coercer).
type Accessor[T any] struct {
	Get func(*T) any
	Set func(*T, any) error
}

// Column is one entry of a field table.
type Column[T any] struct {
	Name   string
	Type   primitive.Type
	Access Accessor[T]
}

// Table is the ordered field table of a record type.
type Table[T any] struct {
	typeName string
	columns  []Column[T]
}

// NewTable creates a field table; columns must be given in declaration order.
func NewTable[T any](typeName string, columns ...Column[T]) *Table[T] {
	return &Table[T]{typeName: typeName, columns: slices.Clone(columns)}
}

func (t *Table[T]) TypeName() string { return t.typeName }

func (t *Table[T]) Len() int { return len(t.columns) }

func (t *Table[T]) Columns() []Column[T] { return slices.Clone(t.columns) }

// Column finds a column by its exact name.
func (t *Table[T]) Column(name string) (Column[T], bool) {
	for _, c := range t.columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column[T]{}, false
}

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func mismatch[V any](v any) error {
	var want V
	return fmt.Errorf("%w: got %T, want %T", ErrValueType, v, want)
}

// Direct binds a field whose Go type is the canonical type of its kind.
// A nil value stores the zero value.
func Direct[T, V any](ref func(*T) *V) Accessor[T] {
	return Accessor[T]{
		Get: func(t *T) any { return *ref(t) },
		Set: func(t *T, v any) error {
			if v == nil {
				var zero V
				*ref(t) = zero
				return nil
			}
			x, ok := v.(V)
			if !ok {
				return mismatch[V](v)
			}
			*ref(t) = x
			return nil
		},
	}
}

// Nullable binds a pointer field; nil values round-trip as nil pointers.
func Nullable[T, V any](ref func(*T) **V) Accessor[T] {
	return Accessor[T]{
		Get: func(t *T) any {
			p := *ref(t)
			if p == nil {
				return nil
			}
			return *p
		},
		Set: func(t *T, v any) error {
			if v == nil {
				*ref(t) = nil
				return nil
			}
			x, ok := v.(V)
			if !ok {
				return mismatch[V](v)
			}
			*ref(t) = &x
			return nil
		},
	}
}

// EnumOf binds a named integer enum field, exchanging values as int64.
// Members of an unsigned enum must not exceed math.MaxInt64; the analyzer
// does not emit enums that break this.
func EnumOf[T any, E integer](ref func(*T) *E) Accessor[T] {
	return Accessor[T]{
		Get: func(t *T) any { return int64(*ref(t)) },
		Set: func(t *T, v any) error {
			if v == nil {
				*ref(t) = 0
				return nil
			}
			x, ok := v.(int64)
			if !ok {
				return mismatch[int64](v)
			}
			*ref(t) = E(x)
			return nil
		},
	}
}

// NullableEnumOf binds a pointer to a named integer enum. Values follow EnumOf's range.
func NullableEnumOf[T any, E integer](ref func(*T) **E) Accessor[T] {
	return Accessor[T]{
		Get: func(t *T) any {
			p := *ref(t)
			if p == nil {
				return nil
			}
			return int64(*p)
		},
		Set: func(t *T, v any) error {
			if v == nil {
				*ref(t) = nil
				return nil
			}
			x, ok := v.(int64)
			if !ok {
				return mismatch[int64](v)
			}
			e := E(x)
			*ref(t) = &e
			return nil
		},
	}
}

// Convert binds a named type V stored through its canonical type C, e.g. type Cents int64.
func Convert[T, V, C any](ref func(*T) *V, to func(C) V, from func(V) C) Accessor[T] {
	return Accessor[T]{
		Get: func(t *T) any { return from(*ref(t)) },
		Set: func(t *T, v any) error {
			if v == nil {
				var zero V
				*ref(t) = zero
				return nil
			}
			x, ok := v.(C)
			if !ok {
				return mismatch[C](v)
			}
			*ref(t) = to(x)
			return nil
		},
	}
}
