// Package library loads the media application's SQLite metadata store into a
// read-only in-memory index.
//
// The index carries two mappings built once at batch start: podcast id to
// show record, and podcast id to episode list in store-insertion order, plus
// the set of every episode guid for reconciliation reporting. A missing
// store degrades to an empty index; the store is never written to.
package library
