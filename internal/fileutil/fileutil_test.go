package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteTextCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deep", "out.txt")

	if err := WriteText(path, "hello"); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Fatalf("content = %q, want %q", got, "hello")
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")

	exists, err := Exists(path)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatal("expected missing path to report false")
	}

	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	exists, err = Exists(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("expected existing path to report true")
	}
}

func TestExistsReportsStatFailures(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Stat through a regular file fails with ENOTDIR, not "not exist".
	if _, err := Exists(filepath.Join(blocker, "nested")); err == nil {
		t.Fatal("expected stat failure to surface")
	}
}
