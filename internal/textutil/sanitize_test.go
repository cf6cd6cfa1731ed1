package textutil

import (
	"strings"
	"testing"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Morning Show", "Morning_Show"},
		{"illegal characters dropped", `What? A "Great" Episode: Part 1/2`, "What_A_Great_Episode_Part_12"},
		{"whitespace runs collapse", "deep   dive\t\ninto  go", "deep_dive_into_go"},
		{"leading and trailing trimmed", "  ...Final Cut...  ", "Final_Cut"},
		{"empty", "", ""},
		{"only illegal", `<>:"/\|?*`, ""},
		{"unicode preserved", "Café Steréo", "Café_Steréo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTitle(tt.in); got != tt.want {
				t.Errorf("SanitizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeTitleTruncates(t *testing.T) {
	long := strings.Repeat("a", 150)
	got := SanitizeTitle(long)
	if len(got) != 100 {
		t.Fatalf("len = %d, want 100", len(got))
	}
}

func TestSanitizeTitleTruncationDoesNotEndWithSeparator(t *testing.T) {
	// Character 100 lands on an underscore inserted for whitespace.
	long := strings.Repeat("a", 99) + " tail"
	got := SanitizeTitle(long)
	if strings.HasSuffix(got, "_") || strings.HasSuffix(got, ".") {
		t.Fatalf("truncated title ends with separator: %q", got)
	}
}
