package ttml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Segment is one paragraph of transcript text in document order.
type Segment struct {
	Begin    time.Duration
	HasBegin bool
	Text     string
}

// ErrNoSegments indicates a well-formed document that produced no text.
var ErrNoSegments = errors.New("document contains no transcript text")

// Parse extracts ordered transcript segments from a TTML document. Paragraph
// elements are matched by local name so documents with or without the TTML
// namespace both work. Text nested in spans is joined with single spaces.
func Parse(r io.Reader) ([]Segment, error) {
	decoder := xml.NewDecoder(r)

	var segments []Segment
	var parts []string
	var current Segment
	depth := 0

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode ttml: %w", err)
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if tok.Name.Local != "p" {
				continue
			}
			depth++
			if depth == 1 {
				current = Segment{}
				parts = parts[:0]
				for _, attr := range tok.Attr {
					if attr.Name.Local == "begin" {
						current.HasBegin = true
						if begin, err := ParseClock(attr.Value); err == nil {
							current.Begin = begin
						}
						break
					}
				}
			}
		case xml.EndElement:
			if tok.Name.Local != "p" || depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				current.Text = strings.Join(parts, " ")
				if current.Text != "" {
					segments = append(segments, current)
				}
			}
		case xml.CharData:
			if depth > 0 {
				if text := strings.TrimSpace(string(tok)); text != "" {
					parts = append(parts, text)
				}
			}
		}
	}

	if len(segments) == 0 {
		return nil, ErrNoSegments
	}
	return segments, nil
}

// ParseClock interprets a TTML time expression. Offset forms ("12.5s", "12.5")
// and clock forms ("HH:MM:SS" with optional fraction) are accepted.
func ParseClock(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errors.New("empty time expression")
	}

	if parts := strings.Split(value, ":"); len(parts) == 3 {
		hours, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("clock time %q: %w", value, err)
		}
		minutes, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("clock time %q: %w", value, err)
		}
		seconds, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return 0, fmt.Errorf("clock time %q: %w", value, err)
		}
		if hours < 0 || minutes < 0 || minutes > 59 || seconds < 0 || seconds >= 60 {
			return 0, fmt.Errorf("clock time %q: component out of range", value)
		}
		total := float64(hours*3600+minutes*60) + seconds
		return time.Duration(total * float64(time.Second)), nil
	}

	seconds, err := strconv.ParseFloat(strings.TrimSuffix(value, "s"), 64)
	if err != nil {
		return 0, fmt.Errorf("offset time %q: %w", value, err)
	}
	if seconds < 0 {
		return 0, fmt.Errorf("offset time %q: negative", value)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

// FormatClock renders a duration as [HH:MM:SS]-style wall clock text.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
