// Package fileutil provides small filesystem helpers shared by the pipeline
// and report writers.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}

// WriteText writes content to path as UTF-8 text, creating parent directories
// as needed.
func WriteText(path, content string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := EnsureDir(dir); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}

// Exists reports whether path exists. Stat failures other than "not exist"
// are returned so callers never treat a questionable path as free.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
