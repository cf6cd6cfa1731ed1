package services

import (
	"context"
	"strings"
)

type contextKey string

const runIDKey contextKey = "recast.run_id"

// WithRunID attaches a batch run identifier to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, runID)
}

// RunIDFromContext extracts the batch run identifier, if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	value, ok := ctx.Value(runIDKey).(string)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}
