package reconcile

import (
	"testing"

	"recast/internal/library"
	"recast/internal/testsupport"
)

func loadIndex(t *testing.T, podcasts []testsupport.SeedPodcast, episodes []testsupport.SeedEpisode) *library.Index {
	t.Helper()
	path := testsupport.CreateMetadataStore(t, podcasts, episodes)
	index, err := library.Load(t.Context(), path)
	if err != nil {
		t.Fatal(err)
	}
	return index
}

func TestMatchEpisodeNoPodcastID(t *testing.T) {
	index := library.Empty()
	if _, ok := MatchEpisode(index, 0, false, "whatever-trackid"); ok {
		t.Fatal("expected no match without a podcast id")
	}
}

func TestMatchEpisodeUnknownPodcast(t *testing.T) {
	index := loadIndex(t, []testsupport.SeedPodcast{{ID: 1, Title: "Show"}}, nil)
	if _, ok := MatchEpisode(index, 99, true, "whatever-trackid"); ok {
		t.Fatal("expected no match for unknown podcast id")
	}
}

func TestMatchEpisodePodcastWithoutEpisodes(t *testing.T) {
	index := loadIndex(t, []testsupport.SeedPodcast{{ID: 5, Title: "Empty Feed", Author: "A"}}, nil)
	match, ok := MatchEpisode(index, 5, true, "some-trackid")
	if !ok {
		t.Fatal("expected placeholder match")
	}
	if match.Tier != TierPlaceholder {
		t.Errorf("tier = %v, want placeholder", match.Tier)
	}
	if match.Episode.Title != "Unknown Episode" || match.Episode.PubDateKnown {
		t.Errorf("episode = %+v", match.Episode)
	}
	if match.Podcast.Title != "Empty Feed" {
		t.Errorf("podcast = %+v", match.Podcast)
	}
}

func TestMatchEpisodeTierExact(t *testing.T) {
	index := loadIndex(t,
		[]testsupport.SeedPodcast{{ID: 42, Title: "Show"}},
		[]testsupport.SeedEpisode{
			{PodcastID: 42, Title: "Other", PubDate: testsupport.Float64Ptr(900), GUID: testsupport.StringPtr("ZZZZZZZZZZZZ")},
			{PodcastID: 42, Title: "Wanted", PubDate: testsupport.Float64Ptr(100), GUID: testsupport.StringPtr("A1B2C3D4E5F6")},
		},
	)
	match, ok := MatchEpisode(index, 42, true, "A1B2C3D4E5F6")
	if !ok || match.Tier != TierExact {
		t.Fatalf("match = %+v ok = %v", match, ok)
	}
	if match.Episode.Title != "Wanted" {
		t.Errorf("episode = %q", match.Episode.Title)
	}
}

func TestMatchEpisodeTierExactFirstInStoreOrderWins(t *testing.T) {
	// Duplicate guids are legal; the first structural match in store order wins.
	index := loadIndex(t,
		[]testsupport.SeedPodcast{{ID: 1, Title: "Show"}},
		[]testsupport.SeedEpisode{
			{PodcastID: 1, Title: "First", GUID: testsupport.StringPtr("dup-guid-0001")},
			{PodcastID: 1, Title: "Second", GUID: testsupport.StringPtr("dup-guid-0001")},
		},
	)
	match, _ := MatchEpisode(index, 1, true, "dup-guid-0001")
	if match.Episode.Title != "First" {
		t.Errorf("episode = %q, want First", match.Episode.Title)
	}
}

func TestMatchEpisodeTierSubstring(t *testing.T) {
	tests := []struct {
		name     string
		trackid  string
		guid     string
		wantTier Tier
	}{
		{"guid contains trackid", "ABCDEFGHIJKL", "prefix-ABCDEFGHIJKL-suffix", TierSubstring},
		{"trackid contains guid", "prefix-ABCDEFGHIJKL-suffix", "ABCDEFGHIJKL", TierSubstring},
		{"shorter at guard boundary", "ABCDEFGHIJ", "xx-ABCDEFGHIJ-xx", TierRecency},
		{"both short", "ABCDE", "ABCDE-and-more", TierRecency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index := loadIndex(t,
				[]testsupport.SeedPodcast{{ID: 3, Title: "Show"}},
				[]testsupport.SeedEpisode{
					{PodcastID: 3, Title: "Candidate", PubDate: testsupport.Float64Ptr(10), GUID: testsupport.StringPtr(tt.guid)},
				},
			)
			match, ok := MatchEpisode(index, 3, true, tt.trackid)
			if !ok {
				t.Fatal("expected a match")
			}
			if match.Tier != tt.wantTier {
				t.Errorf("tier = %v, want %v", match.Tier, tt.wantTier)
			}
		})
	}
}

func TestMatchEpisodeTierRecency(t *testing.T) {
	index := loadIndex(t,
		[]testsupport.SeedPodcast{{ID: 99, Title: "Show"}},
		[]testsupport.SeedEpisode{
			{PodcastID: 99, Title: "Older", PubDate: testsupport.Float64Ptr(100)},
			{PodcastID: 99, Title: "Newer", PubDate: testsupport.Float64Ptr(500)},
			{PodcastID: 99, Title: "Undated"},
		},
	)
	match, ok := MatchEpisode(index, 99, true, "no-matching-guid")
	if !ok || match.Tier != TierRecency {
		t.Fatalf("match = %+v ok = %v", match, ok)
	}
	if match.Episode.Title != "Newer" {
		t.Errorf("episode = %q, want Newer", match.Episode.Title)
	}
}

func TestMatchEpisodeTierRecencyAllUndated(t *testing.T) {
	index := loadIndex(t,
		[]testsupport.SeedPodcast{{ID: 7, Title: "Show"}},
		[]testsupport.SeedEpisode{
			{PodcastID: 7, Title: "StoreFirst"},
			{PodcastID: 7, Title: "StoreSecond"},
		},
	)
	match, _ := MatchEpisode(index, 7, true, "nope")
	if match.Episode.Title != "StoreFirst" {
		t.Errorf("episode = %q, want StoreFirst", match.Episode.Title)
	}
}

func TestMatchEpisodeEmptyTrackidNeverMatchesEmptyGUID(t *testing.T) {
	index := loadIndex(t,
		[]testsupport.SeedPodcast{{ID: 2, Title: "Show"}},
		[]testsupport.SeedEpisode{
			{PodcastID: 2, Title: "NoGUID", PubDate: testsupport.Float64Ptr(5)},
		},
	)
	match, ok := MatchEpisode(index, 2, true, "")
	if !ok {
		t.Fatal("podcast resolves, so a match is always returned")
	}
	if match.Tier != TierRecency {
		t.Errorf("tier = %v, want recency fallback", match.Tier)
	}
}
