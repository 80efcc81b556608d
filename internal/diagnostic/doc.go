// Package diagnostic provides structured warnings, errors, and notes produced while
// turning Go struct types into field tables.
//
// Key capabilities:
//   - Unsupported field warnings (maps, slices, embedded structs, ...)
//   - Notes for fields excluded with a csv:"-" tag
//   - Errors for requested types that do not exist or are not structs
package diagnostic
