// Package codec converts between delimited text lines and records of a generated
// field table.
//
// A Deserializer turns a lineio.Source into a lazy sequence of *T, addressing fields by
// position or through a header line. A Serializer writes records to a lineio.Sink,
// buffering output up to a flush threshold. Load and LoadParallel fill a bounded
// collection.Collection, the latter fanning line parsing out over worker goroutines.
//
// Records that cannot be converted are reported as *RecordError values carrying the
// line number; they never stop the surrounding sequence. Contradictory options fail
// before the first line is read with options.ErrConfiguration.
package codec
