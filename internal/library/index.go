package library

import "sort"

// Index is the read-only in-memory view of the metadata store. It is built
// once before the batch starts and never mutated afterwards, so it is safe to
// share across goroutines.
type Index struct {
	podcasts map[int64]Podcast
	episodes map[int64][]Episode
	guids    map[string]struct{}
}

// Empty returns an index with no records. Used when the metadata store is
// absent and the batch runs in degraded, filename-only mode.
func Empty() *Index {
	return &Index{
		podcasts: map[int64]Podcast{},
		episodes: map[int64][]Episode{},
		guids:    map[string]struct{}{},
	}
}

// Podcast looks up a podcast by its store identifier.
func (ix *Index) Podcast(id int64) (Podcast, bool) {
	p, ok := ix.podcasts[id]
	return p, ok
}

// Episodes returns the podcast's episodes in store-insertion order. The
// returned slice is shared; callers must not modify it.
func (ix *Index) Episodes(id int64) []Episode {
	return ix.episodes[id]
}

// HasGUID reports whether any episode in the store carries the given guid.
func (ix *Index) HasGUID(guid string) bool {
	_, ok := ix.guids[guid]
	return ok
}

// GUIDs returns every non-empty episode guid in the store, sorted for
// deterministic reporting.
func (ix *Index) GUIDs() []string {
	out := make([]string, 0, len(ix.guids))
	for guid := range ix.guids {
		out = append(out, guid)
	}
	sort.Strings(out)
	return out
}

// PodcastCount returns the number of indexed podcasts.
func (ix *Index) PodcastCount() int { return len(ix.podcasts) }

// EpisodeCount returns the number of indexed episodes across all podcasts.
func (ix *Index) EpisodeCount() int {
	total := 0
	for _, eps := range ix.episodes {
		total += len(eps)
	}
	return total
}

func (ix *Index) addPodcast(p Podcast) {
	ix.podcasts[p.ID] = p
}

func (ix *Index) addEpisode(podcastID int64, e Episode) {
	ix.episodes[podcastID] = append(ix.episodes[podcastID], e)
	if e.GUID != "" {
		ix.guids[e.GUID] = struct{}{}
	}
}
