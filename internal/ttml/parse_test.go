package ttml

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const namespacedDoc = `<?xml version="1.0" encoding="UTF-8"?>
<tt xmlns="http://www.w3.org/ns/ttml">
  <body>
    <div>
      <p begin="0.0s" end="4.2s">Welcome <span>back</span> to the show.</p>
      <p begin="4.2s" end="9.9s">Today we talk about   boats.</p>
      <p begin="9.9s"><span> </span></p>
    </div>
  </body>
</tt>`

func TestParseNamespacedDocument(t *testing.T) {
	segments, err := Parse(strings.NewReader(namespacedDoc))
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	if segments[0].Text != "Welcome back to the show." {
		t.Errorf("segment 0 text = %q", segments[0].Text)
	}
	if segments[1].Text != "Today we talk about   boats." {
		t.Errorf("segment 1 text = %q", segments[1].Text)
	}
	if !segments[1].HasBegin || segments[1].Begin != 4200*time.Millisecond {
		t.Errorf("segment 1 begin = %v (has=%v)", segments[1].Begin, segments[1].HasBegin)
	}
}

func TestParseWithoutNamespace(t *testing.T) {
	doc := `<tt><body><p>plain paragraph</p></body></tt>`
	segments, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 1 || segments[0].Text != "plain paragraph" {
		t.Fatalf("segments = %+v", segments)
	}
	if segments[0].HasBegin {
		t.Error("expected no begin timestamp")
	}
}

func TestParseEmptyDocument(t *testing.T) {
	doc := `<tt xmlns="http://www.w3.org/ns/ttml"><body><div/></body></tt>`
	_, err := Parse(strings.NewReader(doc))
	if !errors.Is(err, ErrNoSegments) {
		t.Fatalf("err = %v, want ErrNoSegments", err)
	}
}

func TestParseMalformedXML(t *testing.T) {
	if _, err := Parse(strings.NewReader("<tt><p>unclosed")); err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestParseMalformedBeginDefaultsToZero(t *testing.T) {
	doc := `<tt><p begin="not-a-time">text</p></tt>`
	segments, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if !segments[0].HasBegin || segments[0].Begin != 0 {
		t.Fatalf("begin = %v (has=%v), want 0", segments[0].Begin, segments[0].HasBegin)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"12.5s", 12500 * time.Millisecond, false},
		{"90", 90 * time.Second, false},
		{"0.0s", 0, false},
		{"01:02:03", time.Hour + 2*time.Minute + 3*time.Second, false},
		{"00:00:03.250", 3250 * time.Millisecond, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-4s", 0, true},
		{"00:99:00", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseClock(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00"},
		{59 * time.Second, "00:00:59"},
		{61 * time.Minute, "01:01:00"},
		{3*time.Hour + 4*time.Minute + 5*time.Second, "03:04:05"},
		{-time.Second, "00:00:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
