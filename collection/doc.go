// Package collection provides Collection, a capacity-bounded list of records that is
// safe for concurrent use.
//
// Every method holds the collection's mutex for the whole call, so no caller observes a
// partially applied mutation. Adds past capacity fail without error; bulk loaders rely on
// that to keep an arbitrary subset of an oversized input.
package collection
