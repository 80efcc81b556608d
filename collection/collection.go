package collection

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"sync"

	"csv-mapper/options"
	"csv-mapper/primitive"
	"csv-mapper/schema"
)

// Collection is an insertion-ordered list of *T with a fixed capacity.
type Collection[T any] struct {
	mu       sync.Mutex
	items    []*T
	capacity int
	table    *schema.Table[T]
}

// New creates an empty collection. table may be nil; field updates and line rendering
// then report failure.
func New[T any](capacity int, table *schema.Table[T]) (*Collection[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be greater than zero, got %d", options.ErrInvalidArgument, capacity)
	}
	return &Collection[T]{
		items:    make([]*T, 0, capacity),
		capacity: capacity,
		table:    table,
	}, nil
}

// FromSlice creates a full collection whose capacity is len(items).
func FromSlice[T any](items []*T, table *schema.Table[T]) (*Collection[T], error) {
	c, err := New(len(items), table)
	if err != nil {
		return nil, err
	}
	c.items = append(c.items, items...)
	return c, nil
}

// FromSeq drains seq into a full collection whose capacity is the number of elements.
func FromSeq[T any](seq iter.Seq[*T], table *schema.Table[T]) (*Collection[T], error) {
	if seq == nil {
		return nil, fmt.Errorf("%w: nil sequence", options.ErrInvalidArgument)
	}
	return FromSlice(slices.Collect(seq), table)
}

// TryAdd appends item unless the collection is full.
func (c *Collection[T]) TryAdd(item *T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) >= c.capacity {
		return false
	}
	c.items = append(c.items, item)
	return true
}

// RemoveLast drops the last element; it does nothing on an empty collection.
func (c *Collection[T]) RemoveLast() {
	c.TryRemoveLast()
}

// RemoveAt drops the element at index; out-of-range indexes are ignored.
func (c *Collection[T]) RemoveAt(index int) {
	c.TryRemoveAt(index)
}

func (c *Collection[T]) TryRemoveLast() (*T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.removeAt(len(c.items) - 1)
}

func (c *Collection[T]) TryRemoveAt(index int) (*T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.removeAt(index)
}

func (c *Collection[T]) removeAt(index int) (*T, bool) {
	if index < 0 || index >= len(c.items) {
		return nil, false
	}
	item := c.items[index]
	c.items = slices.Delete(c.items, index, index+1)
	return item, true
}

// Find returns the first element matching pred.
func (c *Collection[T]) Find(pred func(*T) bool) (*T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.items, pred)
	if i < 0 {
		return nil, false
	}
	return c.items[i], true
}

// Peek returns the element at index without removing it.
func (c *Collection[T]) Peek(index int) (*T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.items) {
		return nil, false
	}
	return c.items[index], true
}

// Take removes and returns the first element matching pred.
func (c *Collection[T]) Take(pred func(*T) bool) (*T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.removeAt(slices.IndexFunc(c.items, pred))
}

// TryReplace puts item in place of the first element matching pred.
func (c *Collection[T]) TryReplace(item *T, pred func(*T) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.items, pred)
	if i < 0 {
		return false
	}
	c.items[i] = item
	return true
}

// TryReplaceAt puts item at index, which must hold an element.
func (c *Collection[T]) TryReplaceAt(item *T, index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.items) {
		return false
	}
	c.items[index] = item
	return true
}

// TryInsert inserts item before index; index == Count appends. It fails when the
// collection is full.
func (c *Collection[T]) TryInsert(item *T, index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) >= c.capacity || index < 0 || index > len(c.items) {
		return false
	}
	c.items = slices.Insert(c.items, index, item)
	return true
}

// TryUpdate sets field of the first element matching pred to value, a canonical value
// as produced by primitive.Coercer. It fails for unknown fields, for nil on a
// non-nullable field, and for values of the wrong type.
func (c *Collection[T]) TryUpdate(pred func(*T) bool, field string, value any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.items, func(item *T) bool { return item != nil && pred(item) })
	if i < 0 {
		return false
	}
	return c.update(c.items[i], field, value)
}

// TryUpdateAt is TryUpdate for the element at index.
func (c *Collection[T]) TryUpdateAt(index int, field string, value any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.items) || c.items[index] == nil {
		return false
	}
	return c.update(c.items[index], field, value)
}

func (c *Collection[T]) update(item *T, field string, value any) bool {
	if c.table == nil || field == "" {
		return false
	}
	col, ok := c.table.Column(field)
	if !ok {
		return false
	}
	if value == nil && !col.Type.Nullable {
		return false
	}
	return col.Access.Set(item, value) == nil
}

// Sort orders the elements with cmpFn, which must handle nil elements.
func (c *Collection[T]) Sort(cmpFn func(a, b *T) int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	slices.SortStableFunc(c.items, cmpFn)
}

// SortBy sorts c ascending by key; nil elements sort first.
func SortBy[T any, K cmp.Ordered](c *Collection[T], key func(*T) K) {
	c.Sort(func(a, b *T) int {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		case b == nil:
			return 1
		}
		return cmp.Compare(key(a), key(b))
	})
}

func (c *Collection[T]) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// CountFunc counts the elements matching pred.
func (c *Collection[T]) CountFunc(pred func(*T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, item := range c.items {
		if pred(item) {
			n++
		}
	}
	return n
}

func (c *Collection[T]) Capacity() int { return c.capacity }

// Clear removes every element; the capacity is kept.
func (c *Collection[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.items)
	c.items = c.items[:0]
}

// ToSlice returns a snapshot of the elements.
func (c *Collection[T]) ToSlice() []*T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.items)
}

// ToSliceFunc returns a snapshot of the elements matching pred.
func (c *Collection[T]) ToSliceFunc(pred func(*T) bool) []*T {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []*T
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// All iterates over a snapshot taken when iteration starts, so the loop body may call
// back into the collection.
func (c *Collection[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i, item := range c.ToSlice() {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Line renders the element at index as one delimited line of every table field.
// With headers set it renders the header line instead.
func (c *Collection[T]) Line(index int, delimiter rune, headers bool) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.items) {
		return "", false
	}
	return c.line(c.items[index], delimiter, headers)
}

// LineFunc is Line for the first element matching pred.
func (c *Collection[T]) LineFunc(pred func(*T) bool, delimiter rune, headers bool) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.items, pred)
	if i < 0 {
		return "", false
	}
	return c.line(c.items[i], delimiter, headers)
}

func (c *Collection[T]) line(item *T, delimiter rune, headers bool) (string, bool) {
	if item == nil || c.table == nil {
		return "", false
	}
	s, err := schema.Build(c.table, options.Filter{}, delimiter)
	if err != nil {
		return "", false
	}
	if headers {
		return s.HeaderLine(), true
	}
	return string(s.AppendLine(nil, item, primitive.Coercer{})), true
}

func (c *Collection[T]) String() string {
	return fmt.Sprintf("Count = %d, Capacity = %d", c.Count(), c.capacity)
}
