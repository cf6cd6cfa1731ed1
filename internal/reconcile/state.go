package reconcile

// FailedParse records one filename whose trackid extraction failed.
type FailedParse struct {
	File string
	Path string
}

// MappingRow is one line of the full mapping table, one per processed file.
type MappingRow struct {
	TranscriptFile string
	Path           string
	TrackID        string
	OutputFile     string
	Matched        bool
	PodcastTitle   string
	EpisodeTitle   string
	PubDate        string
	Author         string
}

// State accumulates reconciliation facts for one batch run. It is created
// empty at batch start, passed explicitly into the pipeline, consumed by the
// reporter at batch end, and discarded afterwards. Single-writer: the batch
// processes files strictly one at a time.
type State struct {
	RunID string

	discovered int
	trackids   map[string]struct{}
	matched    map[string]struct{}
	failed     []FailedParse
	rows       []MappingRow
}

// NewState returns an empty accumulator for a batch run.
func NewState(runID string) *State {
	return &State{
		RunID:    runID,
		trackids: make(map[string]struct{}),
		matched:  make(map[string]struct{}),
	}
}

// RecordDiscovered counts the transcript files found by discovery.
func (s *State) RecordDiscovered(n int) {
	s.discovered += n
}

// RecordTrackID notes a successfully extracted trackid.
func (s *State) RecordTrackID(trackid string) {
	if trackid == "" {
		return
	}
	s.trackids[trackid] = struct{}{}
}

// RecordMatch notes that a trackid was reconciled to a metadata record.
func (s *State) RecordMatch(trackid string) {
	if trackid == "" {
		return
	}
	s.matched[trackid] = struct{}{}
}

// RecordFailedParse notes a filename whose trackid extraction failed.
func (s *State) RecordFailedParse(file, path string) {
	s.failed = append(s.failed, FailedParse{File: file, Path: path})
}

// AddRow appends one mapping-table row.
func (s *State) AddRow(row MappingRow) {
	s.rows = append(s.rows, row)
}

// Rows returns the mapping table in processing order.
func (s *State) Rows() []MappingRow {
	return s.rows
}

// FailedParses returns the failed-parse list in processing order.
func (s *State) FailedParses() []FailedParse {
	return s.failed
}

// Discovered returns the number of transcript files found.
func (s *State) Discovered() int {
	return s.discovered
}

// Matched reports whether the trackid achieved a match.
func (s *State) Matched(trackid string) bool {
	_, ok := s.matched[trackid]
	return ok
}

// MatchedCount returns the number of distinct matched trackids.
func (s *State) MatchedCount() int {
	return len(s.matched)
}

// UnmatchedTrackIDs returns the set difference between all extracted
// trackids and the matched ones.
func (s *State) UnmatchedTrackIDs() map[string]struct{} {
	out := make(map[string]struct{}, len(s.trackids))
	for id := range s.trackids {
		if _, ok := s.matched[id]; !ok {
			out[id] = struct{}{}
		}
	}
	return out
}
