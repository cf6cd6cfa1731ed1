package testsupport

import (
	"path/filepath"
	"testing"

	"recast/internal/config"
)

// NewConfig returns a validated config rooted in a per-test temp directory.
// The database path points at a file that does not exist, so tests exercise
// degraded mode unless they assign a store created with CreateMetadataStore.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CacheDir = filepath.Join(base, "cache")
	cfg.Paths.DatabasePath = filepath.Join(base, "MTLibrary.sqlite")
	cfg.Paths.OutputDir = filepath.Join(base, "out")
	cfg.Paths.ReportDir = filepath.Join(base, "out", "reports")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}
