package reconcile

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"recast/internal/fileutil"
	"recast/internal/library"
	"recast/internal/logging"
)

// Report file names inside the report directory.
const (
	MappingFileName              = "mapping.csv"
	UnmatchedTranscriptsFileName = "unmatched_transcripts.log"
	UnmatchedEntriesFileName     = "unmatched_database_entries.log"
	FailedParsesFileName         = "failed_parses.log"
)

var mappingColumns = []string{
	"transcript_file", "trackid", "output_file", "matched",
	"podcast_title", "episode_title", "pub_date", "author",
}

// Summary totals one batch run for the console table and exit reporting.
type Summary struct {
	Discovered         int
	Matched            int
	Unmatched          int
	FailedParses       int
	UnmatchedDBEntries int
}

// ReportPaths lists where the reporter wrote its artifacts.
type ReportPaths struct {
	Mapping              string
	UnmatchedTranscripts string
	UnmatchedEntries     string
	FailedParses         string
}

// Reporter writes the reconciliation reports once the batch completes.
type Reporter struct {
	state  *State
	index  *library.Index
	dir    string
	logger *slog.Logger
}

// NewReporter builds a reporter over the finished batch state.
func NewReporter(state *State, index *library.Index, dir string, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Reporter{state: state, index: index, dir: dir, logger: logger}
}

// Write computes the symmetric differences and emits the mapping table plus
// the three diagnostic logs. Individual write failures are logged and do not
// prevent the remaining reports.
func (r *Reporter) Write(ctx context.Context) (Summary, ReportPaths) {
	logger := logging.WithContext(ctx, r.logger).With(logging.String(logging.FieldComponent, "reporter"))

	unmatchedTrackIDs := r.state.UnmatchedTrackIDs()
	unmatchedEntries := r.unmatchedDatabaseEntries()

	summary := Summary{
		Discovered:         r.state.Discovered(),
		FailedParses:       len(r.state.FailedParses()),
		UnmatchedDBEntries: len(unmatchedEntries),
	}
	for _, row := range r.state.Rows() {
		if row.Matched {
			summary.Matched++
		} else {
			summary.Unmatched++
		}
	}

	paths := ReportPaths{
		Mapping:              filepath.Join(r.dir, MappingFileName),
		UnmatchedTranscripts: filepath.Join(r.dir, UnmatchedTranscriptsFileName),
		UnmatchedEntries:     filepath.Join(r.dir, UnmatchedEntriesFileName),
		FailedParses:         filepath.Join(r.dir, FailedParsesFileName),
	}

	if err := r.writeMapping(paths.Mapping); err != nil {
		logger.Warn("failed to write mapping table", logging.String("path", paths.Mapping), logging.Error(err))
	}
	if err := r.writeUnmatchedTranscripts(paths.UnmatchedTranscripts, unmatchedTrackIDs); err != nil {
		logger.Warn("failed to write unmatched transcript log", logging.String("path", paths.UnmatchedTranscripts), logging.Error(err))
	}
	if err := r.writeUnmatchedEntries(paths.UnmatchedEntries, unmatchedEntries); err != nil {
		logger.Warn("failed to write unmatched database entry log", logging.String("path", paths.UnmatchedEntries), logging.Error(err))
	}
	if err := r.writeFailedParses(paths.FailedParses); err != nil {
		logger.Warn("failed to write failed-parse log", logging.String("path", paths.FailedParses), logging.Error(err))
	}

	logger.Info("reconciliation reports written",
		logging.Int("discovered", summary.Discovered),
		logging.Int("matched", summary.Matched),
		logging.Int("unmatched", summary.Unmatched),
		logging.Int("failed_parses", summary.FailedParses),
		logging.Int("unmatched_db_entries", summary.UnmatchedDBEntries),
	)
	return summary, paths
}

// unmatchedDatabaseEntries is the difference between store guids and matched
// trackids. The comparison is deliberately against matched trackids, not all
// extracted ones: a database entry only counts as "has a transcript" when a
// transcript was reconciled back to it, not when a coincidentally identical
// token exists on disk.
func (r *Reporter) unmatchedDatabaseEntries() []string {
	guids := r.index.GUIDs()
	out := make([]string, 0, len(guids))
	for _, guid := range guids {
		if !r.state.Matched(guid) {
			out = append(out, guid)
		}
	}
	return out
}

func (r *Reporter) writeMapping(path string) error {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(mappingColumns); err != nil {
		return err
	}
	for _, row := range r.state.Rows() {
		record := []string{
			row.TranscriptFile,
			row.TrackID,
			row.OutputFile,
			strconv.FormatBool(row.Matched),
			row.PodcastTitle,
			row.EpisodeTitle,
			row.PubDate,
			row.Author,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return fileutil.WriteText(path, b.String())
}

func (r *Reporter) writeUnmatchedTranscripts(path string, unmatched map[string]struct{}) error {
	lines := make([]string, 0, len(unmatched))
	for _, row := range r.state.Rows() {
		if row.TrackID == "" {
			continue
		}
		if _, ok := unmatched[row.TrackID]; !ok {
			continue
		}
		lines = append(lines, row.TranscriptFile+"\t"+row.TrackID+"\t"+row.Path)
	}
	return fileutil.WriteText(path, r.renderLog("unmatched transcripts", lines))
}

func (r *Reporter) writeUnmatchedEntries(path string, guids []string) error {
	return fileutil.WriteText(path, r.renderLog("unmatched database entries", guids))
}

func (r *Reporter) writeFailedParses(path string) error {
	failed := r.state.FailedParses()
	lines := make([]string, 0, len(failed))
	for _, fp := range failed {
		lines = append(lines, fp.File+"\t"+fp.Path)
	}
	return fileutil.WriteText(path, r.renderLog("failed trackid parses", lines))
}

// renderLog produces the fixed header/count/body structure shared by the
// three diagnostic logs.
func (r *Reporter) renderLog(title string, lines []string) string {
	var b strings.Builder
	b.WriteString("recast report: " + title + "\n")
	b.WriteString("run_id: " + r.state.RunID + "\n")
	b.WriteString("generated: " + time.Now().UTC().Format(time.RFC3339) + "\n")
	b.WriteString(fmt.Sprintf("count: %d\n", len(lines)))
	b.WriteString(strings.Repeat("-", headerRuleWidth) + "\n")
	for _, line := range lines {
		b.WriteString(line + "\n")
	}
	return b.String()
}
