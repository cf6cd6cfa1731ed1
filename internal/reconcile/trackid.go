package reconcile

import "strings"

// TrackIDPrefix marks filenames produced by the generator that prepends a
// literal tag before the episode token.
const TrackIDPrefix = "transcript_"

// minConfidentStemLength is the shortest stem accepted as a trackid without
// being flagged low-confidence.
const minConfidentStemLength = 8

// Extraction is the outcome of resolving a trackid from a filename stem.
type Extraction struct {
	Token         string
	OK            bool
	LowConfidence bool
}

// trackidRule pairs a predicate with an extractor. Rules are evaluated top to
// bottom; the first applicable rule decides the outcome.
type trackidRule struct {
	name    string
	applies func(stem string) bool
	extract func(stem string) Extraction
}

var trackidRules = []trackidRule{
	{
		name: "literal-prefix",
		applies: func(stem string) bool {
			return strings.HasPrefix(stem, TrackIDPrefix)
		},
		extract: func(stem string) Extraction {
			token := strings.TrimPrefix(stem, TrackIDPrefix)
			if token == "" {
				return Extraction{}
			}
			return Extraction{Token: token, OK: true}
		},
	},
	{
		name: "bare-stem",
		applies: func(stem string) bool {
			return len(stem) >= minConfidentStemLength
		},
		extract: func(stem string) Extraction {
			return Extraction{Token: stem, OK: true}
		},
	},
	{
		name: "short-stem",
		applies: func(stem string) bool {
			return true
		},
		extract: func(stem string) Extraction {
			return Extraction{Token: stem, OK: true, LowConfidence: true}
		},
	},
}

// ExtractTrackID resolves the matching token for a transcript filename stem.
// A prefixed stem with nothing after the prefix fails extraction; short stems
// succeed but are flagged low-confidence because the filename is often the
// only identifying signal available.
func ExtractTrackID(stem string) Extraction {
	for _, rule := range trackidRules {
		if rule.applies(stem) {
			return rule.extract(stem)
		}
	}
	return Extraction{}
}
