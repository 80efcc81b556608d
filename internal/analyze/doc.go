// Package analyze provides package loading and record type extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to find the exported struct
// types of a package, classify each exported field into a primitive kind, and collect
// the named integer types that declare constants (enums).
//
// Key types:
//   - TypeID: package import path + type name
//   - StructInfo: a record type and its fields in declaration order
//   - FieldInfo: field name, column name, declared type, kind and accessor shape
//   - EnumInfo: a named integer type and its constant members
package analyze
