package testsupport

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// SeedPodcast describes one podcast row for a fabricated metadata store.
type SeedPodcast struct {
	ID     int64
	Title  string
	Author string
}

// SeedEpisode describes one episode row for a fabricated metadata store.
// Nil PubDate and GUID produce NULL columns.
type SeedEpisode struct {
	PodcastID int64
	Title     string
	PubDate   *float64
	GUID      *string
}

// Float64Ptr returns a pointer to v for SeedEpisode literals.
func Float64Ptr(v float64) *float64 { return &v }

// StringPtr returns a pointer to v for SeedEpisode literals.
func StringPtr(v string) *string { return &v }

// CreateMetadataStore builds a SQLite database shaped like the media
// application's metadata store and returns its path. Episode rows are
// inserted in slice order so store-insertion order is reproducible.
func CreateMetadataStore(t testing.TB, podcasts []SeedPodcast, episodes []SeedEpisode) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "MTLibrary.sqlite")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer db.Close()

	schema := []string{
		`CREATE TABLE ZMTPODCAST (
			Z_PK INTEGER PRIMARY KEY,
			ZTITLE TEXT,
			ZAUTHOR TEXT
		)`,
		`CREATE TABLE ZMTEPISODE (
			Z_PK INTEGER PRIMARY KEY AUTOINCREMENT,
			ZPODCAST INTEGER,
			ZTITLE TEXT,
			ZPUBDATE REAL,
			ZGUID TEXT
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	for _, p := range podcasts {
		if _, err := db.Exec(
			`INSERT INTO ZMTPODCAST (Z_PK, ZTITLE, ZAUTHOR) VALUES (?, ?, ?)`,
			p.ID, p.Title, p.Author,
		); err != nil {
			t.Fatalf("insert podcast %d: %v", p.ID, err)
		}
	}

	for _, e := range episodes {
		if _, err := db.Exec(
			`INSERT INTO ZMTEPISODE (ZPODCAST, ZTITLE, ZPUBDATE, ZGUID) VALUES (?, ?, ?, ?)`,
			e.PodcastID, e.Title, nullableFloat(e.PubDate), nullableString(e.GUID),
		); err != nil {
			t.Fatalf("insert episode %q: %v", e.Title, err)
		}
	}

	return path
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}
