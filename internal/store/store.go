// Package store provides the SQLite archive of completed analyses. The live
// document never touches disk; the archive only records what an analysis
// concluded, so the landing screen can show recent sessions.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Record is one archived analysis session.
type Record struct {
	ID             string // document session ID
	Name           string
	Summary        string
	Language       string
	HighlightCount int
	HighRiskCount  int
	CreatedAt      time.Time
}

// Open creates a Store at the given database path, creating tables as
// needed. Uses WAL mode for file-based databases.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same database.
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS analyses (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		summary TEXT,
		language TEXT,
		highlight_count INTEGER DEFAULT 0,
		high_risk_count INTEGER DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveAnalysis archives one completed analysis. Saving the same session ID
// again overwrites the earlier row.
func (s *Store) SaveAnalysis(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	_, err := s.db.Exec(`
		INSERT INTO analyses (id, name, summary, language, highlight_count, high_risk_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			summary = excluded.summary,
			language = excluded.language,
			highlight_count = excluded.highlight_count,
			high_risk_count = excluded.high_risk_count
	`, rec.ID, rec.Name, rec.Summary, rec.Language, rec.HighlightCount, rec.HighRiskCount, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	return nil
}

// Recent returns the newest archived analyses, newest first.
func (s *Store) Recent(limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, summary, language, highlight_count, high_risk_count, created_at
		FROM analyses
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Name, &r.Summary, &r.Language,
			&r.HighlightCount, &r.HighRiskCount, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
