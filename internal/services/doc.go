// Package services defines the shared error taxonomy and context plumbing
// used across the extraction pipeline.
//
// Errors are tagged with sentinel markers (source missing, parse failure,
// write failure, configuration, transient) so callers can decide between
// skipping a file and aborting the batch without string matching.
package services
