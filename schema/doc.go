// Package schema holds compile-time field tables and the schemas derived from them.
//
// A Table[T] lists the exported fields of a record type in declaration order together
// with typed accessors. Tables are written by the csv-mapper-generator command, so
// building a Schema never inspects types at run time.
//
// Key types:
//   - Table[T]: field table of one record type
//   - Column[T]: field name, declared type and accessor
//   - Schema[T]: filtered, ordered field descriptors for one (table, filter, delimiter)
package schema
