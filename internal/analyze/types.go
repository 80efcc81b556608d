package analyze

import (
	"reflect"
	"strings"

	"csv-mapper/internal/common"
	"csv-mapper/primitive"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "csv-mapper/examples/orders"
	Name    string // e.g., "BuyOrder"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// AccessKind selects the schema accessor constructor used for a field.
type AccessKind int

const (
	AccessUnsupported  AccessKind = iota
	AccessDirect                  // schema.Direct
	AccessNullable                // schema.Nullable
	AccessEnum                    // schema.EnumOf
	AccessNullableEnum            // schema.NullableEnumOf
	AccessConvert                 // schema.Convert over the underlying kind
)

// String returns a human-readable representation of the AccessKind.
func (k AccessKind) String() string {
	switch k {
	case AccessUnsupported:
		return "unsupported"
	case AccessDirect:
		return "direct"
	case AccessNullable:
		return "nullable"
	case AccessEnum:
		return "enum"
	case AccessNullableEnum:
		return "nullable enum"
	case AccessConvert:
		return "convert"
	default:
		return common.UnknownStr
	}
}

// FieldInfo describes an exported struct field.
type FieldInfo struct {
	Name  string            // Go field name
	Index int               // Field index in the struct
	Tag   reflect.StructTag // Raw struct tag

	Kind     primitive.KindEnum
	TypeName string // declared type as written in the struct's package, e.g. "*time.Time"
	ElemType string // TypeName without the pointer
	Nullable bool
	Access   AccessKind
	Enum     *TypeID  // set for enum fields
	Imports  []string // import paths referenced by ElemType

	Reason string // why the field is unsupported
}

// CSVName returns the column name from the csv tag, or the field name. The second
// result is false when the tag is "-".
func (f *FieldInfo) CSVName() (string, bool) {
	tag, ok := f.Tag.Lookup("csv")
	if !ok {
		return f.Name, true
	}

	name, _, _ := strings.Cut(tag, ",")
	switch name {
	case "-":
		return "", false
	case "":
		return f.Name, true
	default:
		return name, true
	}
}

// Supported reports whether a field table can address the field.
func (f *FieldInfo) Supported() bool {
	return f.Access != AccessUnsupported
}

// StructInfo is a record type: an exported struct and its exported fields.
type StructInfo struct {
	ID     TypeID
	Fields []FieldInfo // declaration order, unsupported fields included
}

// Columns returns the supported, non-skipped fields in declaration order.
func (s *StructInfo) Columns() []FieldInfo {
	var out []FieldInfo
	for _, f := range s.Fields {
		if _, ok := f.CSVName(); ok && f.Supported() {
			out = append(out, f)
		}
	}

	return out
}

// EnumInfo is a named integer type with constant members.
type EnumInfo struct {
	ID         TypeID
	Underlying string // e.g. "int", "uint8"
	Members    []primitive.EnumMember
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	Structs  map[TypeID]*StructInfo
	Enums    map[TypeID]*EnumInfo
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Structs:  make(map[TypeID]*StructInfo),
		Enums:    make(map[TypeID]*EnumInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetStruct returns the StructInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetStruct(id TypeID) *StructInfo {
	return g.Structs[id]
}

// GetEnum returns the EnumInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetEnum(id TypeID) *EnumInfo {
	return g.Enums[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path    string   // Import path
	Name    string   // Package name
	Dir     string   // Directory of the package sources
	Structs []TypeID // Exported struct types, sorted by name
	Enums   []TypeID // Enum types, sorted by name
}
