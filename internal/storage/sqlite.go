// Package storage provides SQLite-based persistence for pet activity.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for activity persistence.
type Store struct {
	db *sql.DB
}

// Session represents one recorded pet session: how long the pet was on
// screen and what it got up to.
type Session struct {
	ID         int64
	SkinID     string
	Duration   int // seconds
	Jumps      int
	Bounces    int
	DistancePx float64
	CreatedAt  time.Time
}

// Totals aggregates lifetime activity across all sessions.
type Totals struct {
	Sessions   int
	Seconds    int
	Jumps      int
	Bounces    int
	DistancePx float64
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			skin_id TEXT NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			jumps INTEGER NOT NULL DEFAULT 0,
			bounces INTEGER NOT NULL DEFAULT 0,
			distance_px REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_skin_id ON sessions(skin_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_recent ON sessions(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (skin_id, duration_secs, jumps, bounces, distance_px)
		 VALUES (?, ?, ?, ?, ?)`,
		sess.SkinID, sess.Duration, sess.Jumps, sess.Bounces, sess.DistancePx,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent N sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, skin_id, duration_secs, jumps, bounces, distance_px, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var createdAt any
		if err := rows.Scan(&sess.ID, &sess.SkinID, &sess.Duration, &sess.Jumps,
			&sess.Bounces, &sess.DistancePx, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			sess.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				sess.CreatedAt = parsed
			}
		}
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// LifetimeTotals aggregates activity across all recorded sessions.
func (s *Store) LifetimeTotals() (Totals, error) {
	var t Totals
	var seconds, jumps, bounces sql.NullInt64
	var distance sql.NullFloat64

	err := s.db.QueryRow(
		`SELECT COUNT(*), SUM(duration_secs), SUM(jumps), SUM(bounces), SUM(distance_px)
		 FROM sessions`,
	).Scan(&t.Sessions, &seconds, &jumps, &bounces, &distance)
	if err != nil {
		return t, fmt.Errorf("storage: cannot query totals: %w", err)
	}

	if seconds.Valid {
		t.Seconds = int(seconds.Int64)
	}
	if jumps.Valid {
		t.Jumps = int(jumps.Int64)
	}
	if bounces.Valid {
		t.Bounces = int(bounces.Int64)
	}
	if distance.Valid {
		t.DistancePx = distance.Float64
	}

	return t, nil
}

// ClearSessions deletes all recorded sessions.
func (s *Store) ClearSessions() error {
	_, err := s.db.Exec("DELETE FROM sessions")
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}
