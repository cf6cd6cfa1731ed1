// Package reconcile associates cached transcript files with metadata-store
// episode records and reports every item that could not be reconciled.
//
// The engine extracts an opaque trackid from each transcript filename through
// an ordered decision list of rules, matches it against the read-only
// metadata index through three tiers of descending confidence (exact guid
// equality, guarded substring containment, recency fallback), names the
// output file from the matched metadata with deterministic collision
// resolution, and accumulates batch-scoped state that the reporter turns
// into a mapping table and three diagnostic logs.
//
// The batch is single-writer and fully synchronous. All mutable state lives
// in an explicit State value created at batch start; the index is never
// mutated after load.
package reconcile
