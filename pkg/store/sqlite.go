package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS records (
	store    TEXT    NOT NULL,
	key      TEXT    NOT NULL,
	position INTEGER NOT NULL,
	payload  TEXT    NOT NULL,
	PRIMARY KEY (store, key)
)`

// Keyed is satisfied by every Record.
type Keyed interface {
	Key() string
}

// SQLite persists records as JSON rows of a shared table, one store per
// name. Save swaps all rows of the store inside a single transaction.
type SQLite[R Keyed] struct {
	db   *sql.DB
	name string
	path string
}

// OpenSQLite opens (creating if needed) the database file at path.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to sqlite database %s: %w", path, err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create records table in %s: %w", path, err)
	}
	return db, nil
}

// NewSQLite creates a persister for the named store inside db. path is only
// used to describe the target.
func NewSQLite[R Keyed](db *sql.DB, name, path string) *SQLite[R] {
	return &SQLite[R]{db: db, name: name, path: path}
}

// Target returns the database path and store name.
func (s *SQLite[R]) Target() string {
	return fmt.Sprintf("%s#%s", s.path, s.name)
}

// Load returns the store's rows by position.
func (s *SQLite[R]) Load() ([]R, error) {
	rows, err := s.db.Query(`SELECT payload FROM records WHERE store = ? ORDER BY position`, s.name)
	if err != nil {
		return nil, loadError(s.Target(), fmt.Errorf("query records: %w", err))
	}
	defer rows.Close()

	var out []R
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, loadError(s.Target(), fmt.Errorf("scan record: %w", err))
		}
		var r R
		if err := json.Unmarshal([]byte(payload), &r); err != nil {
			return nil, loadError(s.Target(), fmt.Errorf("corrupt record: %w", err))
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, loadError(s.Target(), fmt.Errorf("iterate records: %w", err))
	}
	return out, nil
}

// Save replaces the store's rows in one transaction.
func (s *SQLite[R]) Save(records []R) error {
	payloads := make([]string, len(records))
	for i, r := range records {
		b, err := json.Marshal(r)
		if err != nil {
			return saveError(s.Target(), &encodeError{err: err})
		}
		payloads[i] = string(b)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return saveError(s.Target(), fmt.Errorf("begin transaction: %w", err))
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM records WHERE store = ?`, s.name); err != nil {
		return saveError(s.Target(), fmt.Errorf("clear records: %w", err))
	}
	stmt, err := tx.Prepare(`INSERT INTO records (store, key, position, payload) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return saveError(s.Target(), fmt.Errorf("prepare insert: %w", err))
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.Exec(s.name, r.Key(), i, payloads[i]); err != nil {
			return saveError(s.Target(), fmt.Errorf("insert record %q: %w", r.Key(), err))
		}
	}
	if err := tx.Commit(); err != nil {
		return saveError(s.Target(), fmt.Errorf("commit: %w", err))
	}
	return nil
}
