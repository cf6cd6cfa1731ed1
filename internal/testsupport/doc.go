// Package testsupport provides fixtures shared across package tests: a
// fabricated metadata store, TTML documents, and temp-dir configs.
package testsupport
