// Package lineio reads and writes the text lines a codec works on.
//
// A Source yields trimmed lines; blank lines are skipped unless the source is told to keep
// them. A Sink accepts byte buffers and persists them on Flush. Paths ending in ".zst" are
// transparently decompressed or compressed with zstd.
package lineio
