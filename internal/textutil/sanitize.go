package textutil

import (
	"strings"
	"unicode"
)

// maxTitleLength caps sanitized titles so output filenames stay portable.
const maxTitleLength = 100

func isIllegalFilenameRune(r rune) bool {
	switch r {
	case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
		return true
	}
	return r < 0x20 || r == 0x7f
}

// SanitizeTitle makes podcast and episode titles safe for use in filenames.
// Illegal filename characters are dropped, whitespace runs collapse to a
// single underscore, leading and trailing underscores and dots are trimmed,
// and the result is truncated to 100 characters.
func SanitizeTitle(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pendingSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			pendingSpace = b.Len() > 0
			continue
		}
		if isIllegalFilenameRune(r) {
			continue
		}
		if pendingSpace {
			b.WriteByte('_')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	out := strings.Trim(b.String(), "_.")
	runes := []rune(out)
	if len(runes) > maxTitleLength {
		out = strings.TrimRight(string(runes[:maxTitleLength]), "_.")
	}
	return out
}
