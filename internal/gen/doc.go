// Package gen provides deterministic Go code generation for field tables.
//
// Generation approach uses text/template + go/format. For each package one file is
// written holding:
//   - an enum descriptor (primitive.NewEnum) per enum type used by a record field
//   - a schema.Table per requested struct type, one column per supported field
//
// Accessors are plain closures over field addresses, so building a schema from the
// generated tables never needs reflection.
package gen
