package reconcile

import (
	"strings"

	"recast/internal/library"
)

// Tier identifies which matching strategy produced a match, in descending
// order of confidence.
type Tier int

const (
	// TierExact matched on guid equality.
	TierExact Tier = iota + 1
	// TierSubstring matched on guid/trackid containment.
	TierSubstring
	// TierRecency fell back to the most recently published episode.
	TierRecency
	// TierPlaceholder carries a podcast with no episodes at all.
	TierPlaceholder
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierSubstring:
		return "substring"
	case TierRecency:
		return "recency"
	case TierPlaceholder:
		return "placeholder"
	default:
		return "none"
	}
}

// minSubstringLength is the length the shorter of trackid and guid must
// exceed before containment counts as a match. Short numeric fragments match
// too many guids by accident.
const minSubstringLength = 10

// placeholderEpisodeTitle names the synthetic episode used when a podcast has
// no episode rows. Partial metadata beats none for naming purposes.
const placeholderEpisodeTitle = "Unknown Episode"

// Match associates a transcript with metadata records.
type Match struct {
	Podcast library.Podcast
	Episode library.Episode
	Tier    Tier
}

// MatchEpisode selects the best episode record for a trackid within the given
// podcast. The bool result is false only when the podcast id is absent or
// unknown; once the podcast resolves, some episode (matched, fallback, or
// placeholder) is always returned.
func MatchEpisode(index *library.Index, podcastID int64, hasPodcastID bool, trackid string) (Match, bool) {
	if !hasPodcastID {
		return Match{}, false
	}
	podcast, ok := index.Podcast(podcastID)
	if !ok {
		return Match{}, false
	}

	episodes := index.Episodes(podcastID)
	if len(episodes) == 0 {
		return Match{
			Podcast: podcast,
			Episode: library.Episode{Title: placeholderEpisodeTitle},
			Tier:    TierPlaceholder,
		}, true
	}

	// Tier 1: exact guid equality, first hit in store order.
	if trackid != "" {
		for _, episode := range episodes {
			if episode.GUID != "" && episode.GUID == trackid {
				return Match{Podcast: podcast, Episode: episode, Tier: TierExact}, true
			}
		}
	}

	// Tier 2: containment in either direction, guarded by length.
	for _, episode := range episodes {
		if substringMatch(trackid, episode.GUID) {
			return Match{Podcast: podcast, Episode: episode, Tier: TierSubstring}, true
		}
	}

	// Tier 3: most recent known publish time, else store order.
	fallback := episodes[0]
	hasDate := false
	for _, episode := range episodes {
		if episode.PubDateKnown && (!hasDate || episode.PubDate > fallback.PubDate) {
			fallback = episode
			hasDate = true
		}
	}
	return Match{Podcast: podcast, Episode: fallback, Tier: TierRecency}, true
}

func substringMatch(trackid, guid string) bool {
	if trackid == "" || guid == "" {
		return false
	}
	shorter := len(trackid)
	if len(guid) < shorter {
		shorter = len(guid)
	}
	if shorter <= minSubstringLength {
		return false
	}
	return strings.Contains(guid, trackid) || strings.Contains(trackid, guid)
}
