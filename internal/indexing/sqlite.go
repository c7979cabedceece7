package indexing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	_ "modernc.org/sqlite"

	gitutil "github.com/insectengine/search.quarkus.io/internal/git"
	"github.com/insectengine/search.quarkus.io/internal/guide"
	"github.com/insectengine/search.quarkus.io/internal/logfields"
	"github.com/insectengine/search.quarkus.io/internal/metrics"
)

// SQLiteIndex implements Writer using SQLite.
type SQLiteIndex struct {
	db       *sql.DB
	recorder metrics.Recorder
}

// NewSQLiteIndex creates a SQLite-backed index.
// Use ":memory:" for an in-memory database, or a file path for persistent storage.
func NewSQLiteIndex(dbPath string) (*SQLiteIndex, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	idx := &SQLiteIndex{db: db, recorder: metrics.NoopRecorder{}}
	if err := idx.initialize(); err != nil {
		_ = db.Close() // Best effort cleanup on initialization error
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return idx, nil
}

// WithMetrics injects a metrics recorder. Returns idx for chaining.
func (idx *SQLiteIndex) WithMetrics(r metrics.Recorder) *SQLiteIndex {
	if r != nil {
		idx.recorder = r
	}
	return idx
}

func (idx *SQLiteIndex) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS guides (
		version TEXT NOT NULL,
		url TEXT NOT NULL,
		origin TEXT NOT NULL,
		title TEXT,
		summary TEXT,
		keywords TEXT,
		categories TEXT,
		topics TEXT,
		extensions TEXT,
		content BLOB,
		PRIMARY KEY (version, url)
	);
	CREATE INDEX IF NOT EXISTS idx_guides_origin ON guides(origin);
	`
	_, err := idx.db.Exec(schema)
	return err
}

// Write stores one guide row, reading its content through the provider. A
// content path absent from the pages tree is recorded as a row without
// content rather than failing the run; any other read failure is an error.
func (idx *SQLiteIndex) Write(ctx context.Context, g *guide.Guide) error {
	content, err := readContent(g)
	if err != nil {
		var nf *gitutil.NotFoundError
		if errors.As(err, &nf) {
			idx.recorder.IncContentReadFailure()
			slog.Warn("Published content missing, indexing metadata only",
				logfields.URL(g.URL), logfields.Path(nf.Path))
		} else {
			return fmt.Errorf("read guide content %s: %w", g.URL, err)
		}
	}

	_, err = idx.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO guides
		 (version, url, origin, title, summary, keywords, categories, topics, extensions, content)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.Version, g.URL, g.Origin, g.Title, g.Summary, g.Keywords,
		joinSet(g.Categories), joinSet(g.Topics), joinSet(g.Extensions), content,
	)
	if err != nil {
		return fmt.Errorf("insert guide %s: %w", g.URL, err)
	}
	return nil
}

// Count returns the number of indexed guides.
func (idx *SQLiteIndex) Count(ctx context.Context) (int, error) {
	var n int
	err := idx.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM guides").Scan(&n)
	return n, err
}

// Close releases the database handle.
func (idx *SQLiteIndex) Close() error {
	return idx.db.Close()
}

func readContent(g *guide.Guide) ([]byte, error) {
	if g.FullContentProvider == nil {
		return nil, nil
	}
	rc, err := g.FullContentProvider.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
