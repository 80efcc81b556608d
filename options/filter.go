package options

import (
	"fmt"
	"slices"
	"strings"
)

// FilterScope selects what a Filter matches against.
type FilterScope int

const (
	FilterScopeNone FilterScope = iota
	FilterScopeName             // field name
	FilterScopeType             // declared field type, e.g. "*time.Time"
)

// FilterMode selects what happens to matched fields.
type FilterMode int

const (
	FilterModeNone    FilterMode = iota
	FilterModeIgnore             // matched fields are excluded
	FilterModeInclude            // only matched fields are kept
)

// Filter is an include/exclude rule applied while building a schema.
// The zero value applies no filtering.
type Filter struct {
	scope  FilterScope
	mode   FilterMode
	values []string
	set    map[string]struct{}
}

// NewFilter validates and builds a filter. Empty values are rejected.
func NewFilter(mode FilterMode, scope FilterScope, values ...string) (Filter, error) {
	if mode == FilterModeNone || scope == FilterScopeNone {
		if mode == FilterModeNone && scope == FilterScopeNone && len(values) == 0 {
			return Filter{}, nil
		}
		return Filter{}, fmt.Errorf("%w: filter needs both a mode and a scope (got %s, %s)", ErrInvalidArgument, mode, scope)
	}

	set := make(map[string]struct{}, len(values))
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			return Filter{}, fmt.Errorf("%w: filter element %d is empty", ErrInvalidArgument, i)
		}
		set[v] = struct{}{}
	}

	return Filter{
		scope:  scope,
		mode:   mode,
		values: slices.Clone(values),
		set:    set,
	}, nil
}

// IgnoreNames excludes the named fields.
func IgnoreNames(names ...string) (Filter, error) {
	return NewFilter(FilterModeIgnore, FilterScopeName, names...)
}

// IncludeNames keeps only the named fields.
func IncludeNames(names ...string) (Filter, error) {
	return NewFilter(FilterModeInclude, FilterScopeName, names...)
}

// IgnoreTypes excludes fields declared with one of the type names.
func IgnoreTypes(typeNames ...string) (Filter, error) {
	return NewFilter(FilterModeIgnore, FilterScopeType, typeNames...)
}

// IncludeTypes keeps only fields declared with one of the type names.
func IncludeTypes(typeNames ...string) (Filter, error) {
	return NewFilter(FilterModeInclude, FilterScopeType, typeNames...)
}

// MustFilter panics on a filter construction error. It is meant for package-level
// variables and tests.
func MustFilter(f Filter, err error) Filter {
	if err != nil {
		panic(err)
	}
	return f
}

func (f Filter) IsNone() bool { return f.mode == FilterModeNone }

func (f Filter) Scope() FilterScope { return f.scope }

func (f Filter) Mode() FilterMode { return f.mode }

func (f Filter) Values() []string { return slices.Clone(f.values) }

// Ignores reports whether a field with the given name and declared type is filtered out.
func (f Filter) Ignores(name, typeName string) bool {
	if f.IsNone() {
		return false
	}

	key := name
	if f.scope == FilterScopeType {
		key = typeName
	}
	_, matched := f.set[key]

	return matched != (f.mode == FilterModeInclude)
}

func (f Filter) String() string {
	if f.IsNone() {
		return "none"
	}
	return fmt.Sprintf("%s %s [%s]", f.mode, f.scope, strings.Join(f.values, ", "))
}
