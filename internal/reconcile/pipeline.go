package reconcile

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"recast/internal/config"
	"recast/internal/fileutil"
	"recast/internal/library"
	"recast/internal/logging"
	"recast/internal/services"
	"recast/internal/ttml"
)

// PodcastDirPrefix marks the cache directory segment that carries the owning
// podcast id, e.g. PodcastContent42.
const PodcastDirPrefix = "PodcastContent"

const lockFileName = ".recast.lock"

// Options adjusts one batch run.
type Options struct {
	// IncludeTimestamps prefixes every paragraph with its [HH:MM:SS] position.
	IncludeTimestamps bool
	// SingleFile processes one transcript document instead of scanning the cache.
	SingleFile string
}

// Result describes a completed batch run.
type Result struct {
	RunID   string
	Summary Summary
	Reports ReportPaths
}

// Extractor drives the reconciliation batch: discovery, parsing, matching,
// output writing, and final reporting. Files are processed strictly one at a
// time; the metadata index is read-only throughout.
type Extractor struct {
	cfg    *config.Config
	index  *library.Index
	logger *slog.Logger
}

// NewExtractor constructs the batch pipeline.
func NewExtractor(cfg *config.Config, index *library.Index, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Extractor{cfg: cfg, index: index, logger: logger}
}

// Run executes one full batch. Per-file failures are isolated; the run only
// errors when the transcript source is absent, the output directory cannot be
// prepared, or another run holds the output lock.
func (e *Extractor) Run(ctx context.Context, opts Options) (*Result, error) {
	started := time.Now()
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, e.logger).With(logging.String(logging.FieldComponent, "extractor"))

	if err := fileutil.EnsureDir(e.cfg.Paths.OutputDir); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "extracting", "prepare output", "Failed to create output directory", err)
	}
	if err := fileutil.EnsureDir(e.cfg.Paths.ReportDir); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "extracting", "prepare reports", "Failed to create report directory", err)
	}

	// One run owns the output directory for its duration; collision probing
	// is not safe against a concurrent writer.
	lock := flock.New(filepath.Join(e.cfg.Paths.OutputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "extracting", "acquire output lock", "Failed to acquire output directory lock", err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrTransient, "extracting", "acquire output lock",
			fmt.Sprintf("Another run owns %s", e.cfg.Paths.OutputDir), nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	files, err := e.discover(opts)
	if err != nil {
		return nil, err
	}

	state := NewState(runID)
	state.RecordDiscovered(len(files))
	logger.Info("transcript discovery completed",
		logging.Int("files", len(files)),
		logging.Int("indexed_podcasts", e.index.PodcastCount()),
		logging.Int("indexed_episodes", e.index.EpisodeCount()),
	)

	for _, path := range files {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		e.processFile(ctx, state, path, opts)
	}

	summary, reports := NewReporter(state, e.index, e.cfg.Paths.ReportDir, e.logger).Write(ctx)
	logger.Info("batch completed",
		logging.Int("matched", summary.Matched),
		logging.Int("unmatched", summary.Unmatched),
		logging.Duration("elapsed", time.Since(started)),
	)
	return &Result{RunID: runID, Summary: summary, Reports: reports}, nil
}

// discover collects transcript paths, sorted for deterministic processing.
func (e *Extractor) discover(opts Options) ([]string, error) {
	if opts.SingleFile != "" {
		if _, err := os.Stat(opts.SingleFile); err != nil {
			return nil, services.Wrap(services.ErrSourceMissing, "discovering", "stat transcript",
				fmt.Sprintf("Transcript file %s not found", opts.SingleFile), err)
		}
		return []string{opts.SingleFile}, nil
	}

	root := e.cfg.Paths.CacheDir
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, services.Wrap(services.ErrSourceMissing, "discovering", "scan transcript cache",
			fmt.Sprintf("Transcript cache %s not found", root), err)
	}

	ext := e.cfg.Extraction.TranscriptExtension
	var files []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, services.Wrap(services.ErrSourceMissing, "discovering", "scan transcript cache",
			fmt.Sprintf("Failed to walk transcript cache %s", root), err)
	}
	sort.Strings(files)
	return files, nil
}

// processFile runs one transcript through parse, trackid resolution,
// matching, naming, and output. Failures are recorded and never abort the
// batch.
func (e *Extractor) processFile(ctx context.Context, state *State, path string, opts Options) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	logger := logging.WithContext(ctx, e.logger).With(
		logging.String(logging.FieldComponent, "extractor"),
		logging.String(logging.FieldFile, base),
	)

	segments, err := e.parseDocument(path)
	if err != nil {
		logger.Warn("no transcript content extracted", logging.Error(err))
		state.AddRow(MappingRow{TranscriptFile: base, Path: path, TrackID: stem})
		return
	}

	extraction := ExtractTrackID(stem)
	if !extraction.OK {
		logger.Warn("trackid extraction failed", logging.String("stem", stem))
		state.RecordFailedParse(base, path)
		state.AddRow(MappingRow{TranscriptFile: base, Path: path, TrackID: stem})
		return
	}
	if extraction.LowConfidence {
		logger.Warn("short filename stem; trackid is low-confidence",
			logging.String(logging.FieldTrackID, extraction.Token))
	}
	state.RecordTrackID(extraction.Token)

	podcastID, hasPodcastID := podcastIDFromPath(path)
	match, matched := MatchEpisode(e.index, podcastID, hasPodcastID, extraction.Token)

	var matchRef *Match
	if matched {
		matchRef = &match
		state.RecordMatch(extraction.Token)
		if match.Tier == TierRecency {
			logger.Debug("matched by recency fallback",
				logging.String(logging.FieldTrackID, extraction.Token),
				logging.Int64(logging.FieldPodcastID, podcastID),
				logging.String("episode", match.Episode.Title),
			)
		}
	}

	row := MappingRow{
		TranscriptFile: base,
		Path:           path,
		TrackID:        extraction.Token,
		Matched:        matched,
	}
	if matched {
		row.PodcastTitle = match.Podcast.Title
		row.EpisodeTitle = match.Episode.Title
		row.PubDate = FormatPubDate(match.Episode.PubDate, match.Episode.PubDateKnown)
		row.Author = match.Podcast.Author
	}

	name := OutputName(matchRef, podcastID, hasPodcastID, stem)
	outPath, err := ResolveCollision(e.cfg.Paths.OutputDir, name)
	if err != nil {
		wrapped := services.Wrap(services.ErrWrite, "extracting", "resolve output name", "Failed to find a free output file name", err)
		logger.Warn("transcript write failed", logging.String("candidate", name), logging.Error(wrapped))
		state.AddRow(row)
		return
	}
	content := RenderTranscript(segments, opts.IncludeTimestamps, matchRef)
	if err := fileutil.WriteText(outPath, content); err != nil {
		wrapped := services.Wrap(services.ErrWrite, "extracting", "write transcript", "Failed to write output file", err)
		logger.Warn("transcript write failed", logging.String("output", outPath), logging.Error(wrapped))
	} else {
		row.OutputFile = filepath.Base(outPath)
		logger.Info("transcript saved",
			logging.String("output", row.OutputFile),
			logging.Bool("matched", matched),
			logging.String("tier", match.Tier.String()),
		)
	}
	state.AddRow(row)
}

func (e *Extractor) parseDocument(path string) ([]ttml.Segment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ttml.Parse(file)
}

// podcastIDFromPath finds the nearest ancestor directory segment of the form
// PodcastContent<digits> and returns the parsed id.
func podcastIDFromPath(path string) (int64, bool) {
	dir := filepath.Dir(path)
	segments := strings.Split(dir, string(filepath.Separator))
	for i := len(segments) - 1; i >= 0; i-- {
		rest, ok := strings.CutPrefix(segments[i], PodcastDirPrefix)
		if !ok || rest == "" {
			continue
		}
		id := int64(0)
		valid := true
		for _, r := range rest {
			if r < '0' || r > '9' {
				valid = false
				break
			}
			id = id*10 + int64(r-'0')
		}
		if valid {
			return id, true
		}
	}
	return 0, false
}
