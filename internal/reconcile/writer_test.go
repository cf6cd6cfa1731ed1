package reconcile

import (
	"strings"
	"testing"
	"time"

	"recast/internal/library"
	"recast/internal/ttml"
)

func sampleSegments() []ttml.Segment {
	return []ttml.Segment{
		{Begin: 0, HasBegin: true, Text: "First paragraph."},
		{Begin: 65 * time.Second, HasBegin: true, Text: "Second paragraph."},
	}
}

func TestRenderTranscriptPlain(t *testing.T) {
	got := RenderTranscript(sampleSegments(), false, nil)
	want := "First paragraph.\n\nSecond paragraph.\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderTranscriptTimestamps(t *testing.T) {
	got := RenderTranscript(sampleSegments(), true, nil)
	want := "[00:00:00] First paragraph.\n\n[00:01:05] Second paragraph.\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderTranscriptMatchedHeader(t *testing.T) {
	match := &Match{
		Podcast: library.Podcast{Title: "The Daily Brief", Author: "Jo"},
		Episode: library.Episode{Title: "Origins", PubDate: 86400, PubDateKnown: true},
	}
	got := RenderTranscript(sampleSegments(), false, match)

	wantPrefix := "Podcast: The Daily Brief\n" +
		"Episode: Origins\n" +
		"Date: 2001-01-02\n" +
		strings.Repeat("=", 70) + "\n\n"
	if !strings.HasPrefix(got, wantPrefix) {
		t.Fatalf("header mismatch:\n%q", got)
	}
	if !strings.HasSuffix(got, "First paragraph.\n\nSecond paragraph.\n") {
		t.Fatalf("body mismatch:\n%q", got)
	}
}

func TestRenderTranscriptUnknownDateHeader(t *testing.T) {
	match := &Match{
		Podcast: library.Podcast{Title: "Show"},
		Episode: library.Episode{Title: "Unknown Episode"},
	}
	got := RenderTranscript(sampleSegments(), false, match)
	if !strings.Contains(got, "Date: UnknownDate\n") {
		t.Fatalf("missing UnknownDate in header:\n%q", got)
	}
}
