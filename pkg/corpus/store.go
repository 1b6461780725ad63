package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// ErrNotFound is returned when a named corpus does not exist in the store.
var ErrNotFound = errors.New("corpus: not found")

// SetupSchema initializes the corpora table in the provided database. It is
// idempotent and safe to call on an already-initialized database.
func SetupSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS corpora (
    corpus_id INTEGER PRIMARY KEY,
    corpus_name TEXT NOT NULL UNIQUE,
    content TEXT NOT NULL,
    added_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("could not create corpora schema: %w", err)
	}
	return nil
}

// Info holds the metadata of one stored corpus.
type Info struct {
	Id      int
	Name    string
	Size    int // content length in bytes
	AddedAt time.Time
}

// Store provides access to the corpora kept in a database. It holds prepared
// SQL statements for the lifetime of the store.
type Store struct {
	db         *sql.DB
	stmtInsert *sql.Stmt
	stmtGet    *sql.Stmt
	stmtList   *sql.Stmt
	stmtDelete *sql.Stmt
	logger     *slog.Logger
}

// NewStore creates a Store over a database that has had SetupSchema run on
// it, pre-compiling all statements it needs.
func NewStore(db *sql.DB) (*Store, error) {
	stmtInsert, err := db.Prepare(`INSERT INTO corpora (corpus_name, content) VALUES (?, ?) ON CONFLICT(corpus_name) DO UPDATE SET content = excluded.content;`)
	if err != nil {
		return nil, err
	}

	stmtGet, err := db.Prepare(`SELECT content FROM corpora WHERE corpus_name = ?;`)
	if err != nil {
		return nil, err
	}

	stmtList, err := db.Prepare(`SELECT corpus_id, corpus_name, length(content), added_at FROM corpora ORDER BY corpus_name;`)
	if err != nil {
		return nil, err
	}

	stmtDelete, err := db.Prepare(`DELETE FROM corpora WHERE corpus_name = ?;`)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:         db,
		stmtInsert: stmtInsert,
		stmtGet:    stmtGet,
		stmtList:   stmtList,
		stmtDelete: stmtDelete,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// Close releases the prepared statements held by the Store.
func (s *Store) Close() {
	_ = s.stmtInsert.Close()
	_ = s.stmtGet.Close()
	_ = s.stmtList.Close()
	_ = s.stmtDelete.Close()
}

// SetLogger sets the logger for the Store. By default all logs are discarded.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Add stores content under name, replacing any previous corpus with the same
// name.
func (s *Store) Add(ctx context.Context, name, content string) error {
	if _, err := s.stmtInsert.ExecContext(ctx, name, content); err != nil {
		return fmt.Errorf("could not store corpus '%s': %w", name, err)
	}
	s.logger.InfoContext(ctx, "Corpus stored",
		slog.String("corpus_name", name),
		slog.Int("size_bytes", len(content)),
	)
	return nil
}

// Get returns the content of the named corpus, or ErrNotFound.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	var content string
	err := s.stmtGet.QueryRowContext(ctx, name).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("corpus '%s': %w", name, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("could not load corpus '%s': %w", name, err)
	}
	return content, nil
}

// List returns metadata for every stored corpus, ordered by name.
func (s *Store) List(ctx context.Context) ([]Info, error) {
	rows, err := s.stmtList.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var infos []Info
	for rows.Next() {
		var info Info
		var added string
		if err = rows.Scan(&info.Id, &info.Name, &info.Size, &added); err != nil {
			return nil, err
		}
		// Timestamps older stores wrote by hand may not parse; leave those zero.
		info.AddedAt, _ = time.Parse(time.RFC3339, added)
		infos = append(infos, info)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return infos, nil
}

// Remove deletes the named corpus. Removing a corpus that does not exist
// fails with ErrNotFound.
func (s *Store) Remove(ctx context.Context, name string) error {
	res, err := s.stmtDelete.ExecContext(ctx, name)
	if err != nil {
		return fmt.Errorf("could not remove corpus '%s': %w", name, err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("corpus '%s': %w", name, ErrNotFound)
	}
	s.logger.InfoContext(ctx, "Corpus removed",
		slog.String("corpus_name", name),
	)
	return nil
}
