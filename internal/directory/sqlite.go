package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/traydesk/transferdesk/internal/common"
)

// SQLite is a read-only directory backed by an embedded SQLite database
// with a directory_entries(access_code, display_name, email) table.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens the directory database. The pipeline only ever reads
// from it.
func OpenSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open directory db: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Resolve(ctx context.Context, code string) (Entry, error) {
	const q = `SELECT display_name, email FROM directory_entries WHERE access_code = ?`
	var e Entry
	err := s.db.QueryRowContext(ctx, q, code).Scan(&e.Name, &e.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, common.ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("resolve %q: %w", code, err)
	}
	return e, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
