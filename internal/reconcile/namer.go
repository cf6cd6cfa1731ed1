package reconcile

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"recast/internal/fileutil"
	"recast/internal/textutil"
)

// UnknownDate is rendered when an episode has no usable publish time.
const UnknownDate = "UnknownDate"

const outputExtension = ".txt"

// referenceInstant is the store's epoch: publish times are offsets in seconds
// from 2001-01-01T00:00:00 UTC.
var referenceInstant = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// maxPubDateOffset is the largest offset representable as a time.Duration.
// Store rows past it are garbage, not dates.
const maxPubDateOffset = math.MaxInt64 / int64(time.Second)

// FormatPubDate renders a publish time as YYYY-MM-DD. Unknown, negative, or
// out-of-range offsets render as UnknownDate.
func FormatPubDate(seconds int64, known bool) string {
	if !known || seconds < 0 || seconds > maxPubDateOffset {
		return UnknownDate
	}
	return referenceInstant.Add(time.Duration(seconds) * time.Second).Format("2006-01-02")
}

// OutputName builds the candidate output filename for one transcript.
// Sanitization applies to metadata titles only; the trackid-bearing fallback
// stem and the podcast id pass through untouched.
func OutputName(match *Match, podcastID int64, hasPodcastID bool, fallbackStem string) string {
	if match != nil {
		podcast := textutil.SanitizeTitle(match.Podcast.Title)
		if podcast == "" {
			podcast = "Unknown_Podcast"
		}
		episode := textutil.SanitizeTitle(match.Episode.Title)
		if episode == "" {
			episode = "Unknown_Episode"
		}
		date := FormatPubDate(match.Episode.PubDate, match.Episode.PubDateKnown)
		return podcast + "_" + date + "_" + episode + outputExtension
	}
	if hasPodcastID {
		return fmt.Sprintf("Podcast_%d_%s%s", podcastID, fallbackStem, outputExtension)
	}
	return fallbackStem + outputExtension
}

// ResolveCollision returns dir/name, or the first free suffixed variant
// (_1, _2, ...) when the candidate already exists on disk. Existing files are
// never reused, so repeated runs always produce strictly new names. A probe
// that cannot stat its candidate fails rather than guessing.
func ResolveCollision(dir, name string) (string, error) {
	const maxAttempts = 10000
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for attempt := 0; attempt <= maxAttempts; attempt++ {
		candidate := name
		if attempt > 0 {
			candidate = fmt.Sprintf("%s_%d%s", base, attempt, ext)
		}
		path := filepath.Join(dir, candidate)
		exists, err := fileutil.Exists(path)
		if err != nil {
			return "", err
		}
		if !exists {
			return path, nil
		}
	}
	return "", fmt.Errorf("exhausted output filename slots for %s in %s", name, dir)
}
