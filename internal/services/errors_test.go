package services

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapIncludesDetailAndMarker(t *testing.T) {
	base := errors.New("disk full")
	err := Wrap(ErrWrite, "extracting", "write transcript", "cannot create output", base)
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("expected ErrWrite marker, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"extracting", "write transcript", "cannot create output", "disk full"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestWrapNilMarkerDefaultsTransient(t *testing.T) {
	err := Wrap(nil, "stage", "", "", nil)
	if !errors.Is(err, ErrTransient) {
		t.Fatalf("expected ErrTransient, got %v", err)
	}
}

func TestWrapEmptyDetail(t *testing.T) {
	err := Wrap(ErrParse, "", "", "", nil)
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected generic detail, got %q", err.Error())
	}
}

func TestFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"source missing", Wrap(ErrSourceMissing, "discovering", "scan cache", "missing", nil), true},
		{"configuration", Wrap(ErrConfiguration, "startup", "", "", nil), true},
		{"parse", Wrap(ErrParse, "parsing", "", "", nil), false},
		{"write", Wrap(ErrWrite, "writing", "", "", nil), false},
		{"plain", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fatal(tt.err); got != tt.want {
				t.Errorf("Fatal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunIDContextRoundTrip(t *testing.T) {
	ctx := WithRunID(t.Context(), "run-123")
	got, ok := RunIDFromContext(ctx)
	if !ok || got != "run-123" {
		t.Fatalf("RunIDFromContext = %q, %v", got, ok)
	}
	if _, ok := RunIDFromContext(t.Context()); ok {
		t.Fatal("expected no run id on fresh context")
	}
	if ctx2 := WithRunID(t.Context(), "  "); ctx2 == nil {
		t.Fatal("expected context passthrough for blank run id")
	}
}
