package search

import (
	"bufio"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"recast/internal/services"
)

// DefaultLimit caps result count when the caller does not choose one.
const DefaultLimit = 50

const transcriptExtension = ".txt"

// Options controls one search pass.
type Options struct {
	// Context is the number of lines surrounding each hit to include.
	Context int
	// Limit stops the scan after this many hits. Zero means unlimited.
	Limit int
}

// Hit is one matching line plus its surrounding context.
type Hit struct {
	File    string
	Line    int
	Text    string
	Context []string
}

// Result carries hits plus scan totals for the console summary.
type Result struct {
	Hits         []Hit
	FilesScanned int
	Truncated    bool
}

// Run scans every saved transcript under dir for query, case-insensitively.
// Files are visited in sorted order so repeated searches return hits in a
// stable order.
func Run(ctx context.Context, dir, query string, opts Options) (*Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, services.Wrap(services.ErrConfiguration, "searching", "validate query", "Search query must not be empty", nil)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, services.Wrap(services.ErrSourceMissing, "searching", "stat transcript directory",
			"Transcript directory "+dir+" not found", err)
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(path), transcriptExtension) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, services.Wrap(services.ErrSourceMissing, "searching", "scan transcript directory",
			"Failed to walk transcript directory "+dir, err)
	}
	sort.Strings(files)

	limit := opts.Limit
	needle := strings.ToLower(query)
	result := &Result{}
	for _, path := range files {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		result.FilesScanned++
		done, err := scanFile(path, needle, opts.Context, limit, result)
		if err != nil {
			return nil, err
		}
		if done {
			result.Truncated = true
			break
		}
	}
	return result, nil
}

// scanFile appends hits from one transcript and reports whether the result
// limit has been reached.
func scanFile(path, needle string, contextLines, limit int, result *Result) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, services.Wrap(services.ErrSourceMissing, "searching", "open transcript",
			"Failed to open transcript "+path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return false, services.Wrap(services.ErrParse, "searching", "read transcript",
			"Failed to read transcript "+path, err)
	}

	base := filepath.Base(path)
	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), needle) {
			continue
		}
		result.Hits = append(result.Hits, Hit{
			File:    base,
			Line:    i + 1,
			Text:    line,
			Context: contextWindow(lines, i, contextLines),
		})
		if limit > 0 && len(result.Hits) >= limit {
			return true, nil
		}
	}
	return false, nil
}

func contextWindow(lines []string, center, radius int) []string {
	if radius <= 0 {
		return nil
	}
	lo := max(center-radius, 0)
	hi := min(center+radius+1, len(lines))
	window := make([]string, hi-lo)
	copy(window, lines[lo:hi])
	return window
}
