package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSourceMissing marks a missing transcript cache or metadata store.
	ErrSourceMissing = errors.New("source missing")
	// ErrParse marks a document or filename that could not be interpreted.
	ErrParse = errors.New("parse failure")
	// ErrWrite marks a failed output or report write.
	ErrWrite = errors.New("write failure")
	// ErrConfiguration marks unusable configuration.
	ErrConfiguration = errors.New("configuration error")
	// ErrTransient marks failures with no more specific classification.
	ErrTransient = errors.New("transient failure")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Fatal reports whether an error should abort the batch rather than skip the
// current file. Only a missing transcript source is fatal; every other class
// is isolated per file or per report.
func Fatal(err error) bool {
	return errors.Is(err, ErrSourceMissing) || errors.Is(err, ErrConfiguration)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
