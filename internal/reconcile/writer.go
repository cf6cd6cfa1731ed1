package reconcile

import (
	"strings"

	"recast/internal/ttml"
)

const headerRuleWidth = 70

// RenderTranscript produces the UTF-8 text written for one transcript:
// paragraph segments joined by a blank line, optionally prefixed with their
// [HH:MM:SS] position, preceded by a metadata header block when the file was
// matched.
func RenderTranscript(segments []ttml.Segment, includeTimestamps bool, match *Match) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		if includeTimestamps {
			parts = append(parts, "["+ttml.FormatClock(segment.Begin)+"] "+segment.Text)
		} else {
			parts = append(parts, segment.Text)
		}
	}
	body := strings.Join(parts, "\n\n")

	if match == nil {
		return body + "\n"
	}

	var b strings.Builder
	b.WriteString("Podcast: " + match.Podcast.Title + "\n")
	b.WriteString("Episode: " + match.Episode.Title + "\n")
	b.WriteString("Date: " + FormatPubDate(match.Episode.PubDate, match.Episode.PubDateKnown) + "\n")
	b.WriteString(strings.Repeat("=", headerRuleWidth) + "\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	return b.String()
}
