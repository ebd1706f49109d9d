// Package analytics records search queries typed into the project filter so
// the catalog author can see what visitors look for and which searches come
// up empty. Client addresses are stored only as salted hashes.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const createSearchesTableSQL = `
CREATE TABLE IF NOT EXISTS searches (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    query TEXT NOT NULL,
    category TEXT NOT NULL,
    language TEXT NOT NULL,
    results INTEGER NOT NULL,
    hashed_ip TEXT NOT NULL,
    created_at INTEGER NOT NULL
)`

const createSearchesIndexSQL = `CREATE INDEX IF NOT EXISTS idx_searches_query ON searches (query)`

// SearchEvent is one filter computation with a non-empty query.
type SearchEvent struct {
	Query    string
	Category string
	Language string
	Results  int
	ClientIP string
	At       time.Time
}

// QueryCount aggregates searches for one normalized query.
type QueryCount struct {
	Query    string    `json:"query"`
	Count    int       `json:"count"`
	LastSeen time.Time `json:"last_seen"`
}

// Store persists search events in SQLite
type Store struct {
	db   *sql.DB
	salt string
}

// Open opens (or creates) the store at path. ":memory:" keeps everything in
// process. An empty salt is replaced with a random one, so hashes are then
// only comparable within one process lifetime.
func Open(path, salt string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == ":memory:" {
		// Every pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	} else if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	for _, stmt := range []string{createSearchesTableSQL, createSearchesIndexSQL} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("running migrations: %w", err)
		}
	}

	if salt == "" {
		salt, err = randomSalt()
		if err != nil {
			db.Close()
			return nil, err
		}
	}
	return &Store{db: db, salt: salt}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores one search. Blank queries are ignored.
func (s *Store) Record(ctx context.Context, e SearchEvent) error {
	q := normalizeQuery(e.Query)
	if q == "" {
		return nil
	}
	at := e.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO searches (query, category, language, results, hashed_ip, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, q, e.Category, e.Language, e.Results, HashIP(e.ClientIP, s.salt), at.Unix())
	if err != nil {
		return fmt.Errorf("recording search: %w", err)
	}
	return nil
}

// TopQueries returns the most frequent queries, most recent first on ties.
func (s *Store) TopQueries(ctx context.Context, limit int) ([]QueryCount, error) {
	return s.queryCounts(ctx, "", limit)
}

// ZeroResultQueries returns the most frequent queries that matched nothing.
func (s *Store) ZeroResultQueries(ctx context.Context, limit int) ([]QueryCount, error) {
	return s.queryCounts(ctx, "WHERE results = 0", limit)
}

func (s *Store) queryCounts(ctx context.Context, where string, limit int) ([]QueryCount, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT query, COUNT(*) AS n, MAX(created_at) AS last
		FROM searches `+where+`
		GROUP BY query
		ORDER BY n DESC, last DESC, query ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying searches: %w", err)
	}
	defer rows.Close()

	out := []QueryCount{}
	for rows.Next() {
		var qc QueryCount
		var last int64
		if err := rows.Scan(&qc.Query, &qc.Count, &last); err != nil {
			return nil, fmt.Errorf("scanning searches: %w", err)
		}
		qc.LastSeen = time.Unix(last, 0).UTC()
		out = append(out, qc)
	}
	return out, rows.Err()
}

// HashIP hashes a client address with a salt so the raw address is never stored.
func HashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}

func randomSalt() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}
