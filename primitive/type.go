package primitive

import (
	"slices"
)

// Type describes the declared type of a record field.
type Type struct {
	Kind     KindEnum
	Name     string // declared type as written in the struct, e.g. "*time.Time"
	Nullable bool
	Enum     *EnumType
}

// Of returns the non-nullable Type for a builtin kind.
func Of(kind KindEnum) Type {
	return Type{Kind: kind, Name: kind.GoType()}
}

// Ptr returns the nullable (pointer) form of t.
func (t Type) Ptr() Type {
	if t.Nullable {
		return t
	}
	t.Nullable = true
	t.Name = "*" + t.Name
	return t
}

// Named returns t with a different declared type name.
func (t Type) Named(name string) Type {
	t.Name = name
	if t.Nullable && (len(name) == 0 || name[0] != '*') {
		t.Name = "*" + name
	}
	return t
}

func (t Type) String() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Kind.String()
}

// EnumMember is one named value of an enum type.
type EnumMember struct {
	Name  string
	Value int64
}

// EnumType is the member table of a named integer type.
type EnumType struct {
	name    string
	members []EnumMember
	byName  map[string]int64
	byValue map[int64]string
}

// NewEnum builds an enum descriptor. The first member declared for a value names it.
func NewEnum(name string, members ...EnumMember) *EnumType {
	e := &EnumType{
		name:    name,
		members: slices.Clone(members),
		byName:  make(map[string]int64, len(members)),
		byValue: make(map[int64]string, len(members)),
	}
	for _, m := range members {
		e.byName[m.Name] = m.Value
		if _, ok := e.byValue[m.Value]; !ok {
			e.byValue[m.Value] = m.Name
		}
	}
	return e
}

// Type returns the non-nullable field Type for values of e.
func (e *EnumType) Type() Type {
	return Type{Kind: KindPrimitiveEnum, Name: e.name, Enum: e}
}

func (e *EnumType) TypeName() string { return e.name }

func (e *EnumType) Members() []EnumMember { return slices.Clone(e.members) }

// Lookup resolves a member by its exact, case-sensitive name.
func (e *EnumType) Lookup(name string) (int64, bool) {
	v, ok := e.byName[name]
	return v, ok
}

// MemberName returns the name of the member holding value.
func (e *EnumType) MemberName(value int64) (string, bool) {
	n, ok := e.byValue[value]
	return n, ok
}

// Zero is the zero-valued member used when text names no member.
func (e *EnumType) Zero() int64 { return 0 }
