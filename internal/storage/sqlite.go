// Package storage provides SQLite-based persistence for best scores and run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID        int64
	RunID     string
	Stage     string
	Score     int
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			stage TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_stage ON scores(stage);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(stage, score DESC);

		CREATE TABLE IF NOT EXISTS best_scores (
			stage TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveScore records a finished run for the given stage under a fresh run ID.
func (s *Store) SaveScore(stage string, score int) (ScoreEntry, error) {
	entry := ScoreEntry{RunID: uuid.NewString(), Stage: stage, Score: score}

	result, err := s.db.Exec(
		"INSERT INTO scores (run_id, stage, score) VALUES (?, ?, ?)",
		entry.RunID, stage, score,
	)
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot save score: %w", err)
	}

	entry.ID, err = result.LastInsertId()
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	entry.CreatedAt = time.Now().UTC()

	return entry, nil
}

// TopScores retrieves the top N runs for the given stage, highest first.
func (s *Store) TopScores(stage string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, stage, score, created_at
		 FROM scores
		 WHERE stage = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		stage, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

// AllScores retrieves every run for the given stage, highest first.
func (s *Store) AllScores(stage string) ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, stage, score, created_at
		 FROM scores
		 WHERE stage = ?
		 ORDER BY score DESC, id ASC`,
		stage,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

func scanScores(rows *sql.Rows) ([]ScoreEntry, error) {
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.Stage, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles the driver returning either time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// BestScore returns the persisted best score for the stage, or 0 if none.
func (s *Store) BestScore(stage string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT score FROM best_scores WHERE stage = ?",
		stage,
	).Scan(&score)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return score, nil
}

// BestScores returns every persisted best score keyed by stage.
func (s *Store) BestScores() (map[string]int, error) {
	rows, err := s.db.Query("SELECT stage, score FROM best_scores")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best scores: %w", err)
	}
	defer rows.Close()

	best := make(map[string]int)
	for rows.Next() {
		var stage string
		var score int
		if err := rows.Scan(&stage, &score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		best[stage] = score
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return best, nil
}

// SetBestScore stores score as the stage's best if it beats the current one.
// It reports whether the stored value changed.
func (s *Store) SetBestScore(stage string, score int) (bool, error) {
	result, err := s.db.Exec(
		`INSERT INTO best_scores (stage, score) VALUES (?, ?)
		 ON CONFLICT(stage) DO UPDATE
		 SET score = excluded.score, updated_at = CURRENT_TIMESTAMP
		 WHERE excluded.score > best_scores.score`,
		stage, score,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save best score: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot read affected rows: %w", err)
	}
	return n > 0, nil
}

// RecordRun saves a finished run and raises the stage best if needed.
func (s *Store) RecordRun(stage string, score int) (ScoreEntry, bool, error) {
	entry, err := s.SaveScore(stage, score)
	if err != nil {
		return ScoreEntry{}, false, err
	}
	improved, err := s.SetBestScore(stage, score)
	if err != nil {
		return entry, false, err
	}
	return entry, improved, nil
}

// ClearScores deletes the history and best score for the given stage.
func (s *Store) ClearScores(stage string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE stage = ?", stage); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM best_scores WHERE stage = ?", stage); err != nil {
		return fmt.Errorf("storage: cannot clear best score: %w", err)
	}
	return nil
}
