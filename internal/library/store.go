package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// ErrStoreMissing indicates the metadata store file does not exist. Callers
// treat this as degraded mode rather than a fatal condition.
var ErrStoreMissing = errors.New("metadata store not found")

const (
	podcastQuery = `SELECT Z_PK, ZTITLE, ZAUTHOR FROM ZMTPODCAST ORDER BY Z_PK`
	episodeQuery = `SELECT ZPODCAST, ZTITLE, ZPUBDATE, ZGUID FROM ZMTEPISODE ORDER BY Z_PK`
)

// Load builds the index from the SQLite metadata store at path. Episodes keep
// store-insertion order so matcher tie-breaks stay deterministic.
func Load(ctx context.Context, path string) (*Index, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStoreMissing, path)
		}
		return nil, fmt.Errorf("stat metadata store: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open metadata store: %w", err)
	}
	defer db.Close()

	pragmas := []string{
		"PRAGMA query_only = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	index := Empty()
	if err := loadPodcasts(ctx, db, index); err != nil {
		return nil, err
	}
	if err := loadEpisodes(ctx, db, index); err != nil {
		return nil, err
	}
	return index, nil
}

func loadPodcasts(ctx context.Context, db *sql.DB, index *Index) error {
	rows, err := db.QueryContext(ctx, podcastQuery)
	if err != nil {
		return fmt.Errorf("query podcasts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var title, author sql.NullString
		if err := rows.Scan(&id, &title, &author); err != nil {
			return fmt.Errorf("scan podcast: %w", err)
		}
		index.addPodcast(Podcast{
			ID:     id,
			Title:  title.String,
			Author: author.String,
		})
	}
	return rows.Err()
}

func loadEpisodes(ctx context.Context, db *sql.DB, index *Index) error {
	rows, err := db.QueryContext(ctx, episodeQuery)
	if err != nil {
		return fmt.Errorf("query episodes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var podcastID sql.NullInt64
		var title, guid sql.NullString
		var pubDate sql.NullFloat64
		if err := rows.Scan(&podcastID, &title, &pubDate, &guid); err != nil {
			return fmt.Errorf("scan episode: %w", err)
		}
		if !podcastID.Valid {
			// Orphaned episode rows cannot participate in matching by
			// podcast id, but their guids still count for reconciliation.
			if guid.String != "" {
				index.guids[guid.String] = struct{}{}
			}
			continue
		}
		index.addEpisode(podcastID.Int64, Episode{
			Title:        title.String,
			PubDate:      int64(pubDate.Float64),
			PubDateKnown: pubDate.Valid,
			GUID:         guid.String,
		})
	}
	return rows.Err()
}
