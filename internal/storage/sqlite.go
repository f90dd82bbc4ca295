// Package storage provides SQLite-based persistence for the play-history journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome describes how a play session ended.
type Outcome string

const (
	OutcomeWon       Outcome = "won"
	OutcomeAbandoned Outcome = "abandoned"
)

// Store manages the SQLite database connection for the history journal.
type Store struct {
	db *sql.DB
}

// Session is one recorded attempt at a level.
type Session struct {
	ID        int64
	LevelID   string
	LevelPath string
	Outcome   Outcome
	Moves     int
	Pushes    int
	Duration  time.Duration // stored with second precision
	CreatedAt time.Time
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
			level_id TEXT NOT NULL,
			level_path TEXT NOT NULL DEFAULT '',
			outcome TEXT NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			pushes INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_level_id ON sessions(level_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_best ON sessions(level_id, outcome, moves);
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
	if sess.LevelID == "" {
		return 0, errors.New("storage: session has no level id")
	}
	switch sess.Outcome {
	case OutcomeWon, OutcomeAbandoned:
	default:
		return 0, fmt.Errorf("storage: unknown outcome %q", sess.Outcome)
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions (level_id, level_path, outcome, moves, pushes, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sess.LevelID,
		sess.LevelPath,
		string(sess.Outcome),
		sess.Moves,
		sess.Pushes,
		int64(sess.Duration/time.Second),
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

const sessionColumns = `id, level_id, level_path, outcome, moves, pushes, duration_secs, created_at`

// RecentSessions retrieves the most recent sessions across all levels.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	return scanSessions(rows)
}

// SessionsForLevel retrieves the most recent sessions for one level.
func (s *Store) SessionsForLevel(levelID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE level_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	return scanSessions(rows)
}

// BestSession returns the won session with the fewest moves for the level.
// Returns nil if the level was never solved.
func (s *Store) BestSession(levelID string) (*Session, error) {
	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE level_id = ? AND outcome = ?
		 ORDER BY moves ASC, pushes ASC, duration_secs ASC
		 LIMIT 1`,
		levelID, string(OutcomeWon),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best session: %w", err)
	}
	sessions, err := scanSessions(rows)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return &sessions[0], nil
}

// ClearHistory deletes all sessions for the given level.
func (s *Store) ClearHistory(levelID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// scanSessions reads all rows and closes them.
func scanSessions(rows *sql.Rows) ([]Session, error) {
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var outcome string
		var durationSecs int64
		var createdAt any
		if err := rows.Scan(
			&sess.ID,
			&sess.LevelID,
			&sess.LevelPath,
			&outcome,
			&sess.Moves,
			&sess.Pushes,
			&durationSecs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.Outcome = Outcome(outcome)
		sess.Duration = time.Duration(durationSecs) * time.Second

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
