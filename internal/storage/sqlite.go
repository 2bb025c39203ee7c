// Package storage provides SQLite-based persistence for maze progress and
// run history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// DefaultProfile is used when no player name is given.
const DefaultProfile = "local"

// Store manages the SQLite database connection.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Run is one finished play phase.
type Run struct {
	ID        string
	Profile   string
	Level     int
	Outcome   maze.Outcome
	Pickups   int
	Hazards   int
	Duration  time.Duration
	CreatedAt time.Time
}

// ProfileStats contains aggregated statistics for a profile.
type ProfileStats struct {
	Profile      string
	HighestLevel int
	Runs         int
	Cleared      int // runs that ended on a goal
	GameOvers    int // runs lost to hazards or a fall
	Pickups      int
	Hazards      int
	PlayTime     time.Duration
	LastPlayed   time.Time
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
	// SSH sessions share one store; SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS progress (
			profile TEXT PRIMARY KEY,
			highest_level INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			profile TEXT NOT NULL,
			level INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			pickups INTEGER NOT NULL DEFAULT 0,
			hazards INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_profile ON runs(profile, created_at DESC);
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

// HighestLevel returns the highest level a profile has entered.
// Returns 0 if nothing is recorded.
func (s *Store) HighestLevel(profile string) (int, error) {
	var level int
	err := s.db.QueryRow(
		"SELECT highest_level FROM progress WHERE profile = ?",
		profile,
	).Scan(&level)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	return level, nil
}

// RecordHighestLevel stores level if it beats the recorded one.
func (s *Store) RecordHighestLevel(profile string, level int) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (profile, highest_level, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(profile) DO UPDATE SET
			highest_level = excluded.highest_level,
			updated_at = excluded.updated_at
		 WHERE excluded.highest_level > progress.highest_level`,
		profile, level, s.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record progress: %w", err)
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(profile string, r maze.RunResult) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, profile, level, outcome, pickups, hazards, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, profile, r.Level, string(r.Outcome), r.Pickups, r.Hazards,
		r.Duration.Milliseconds(), s.now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id, nil
}

// RecentRuns retrieves a profile's latest runs, newest first.
func (s *Store) RecentRuns(profile string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, profile, level, outcome, pickups, hazards, duration_ms, created_at
		 FROM runs
		 WHERE profile = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var outcome string
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Profile, &r.Level, &outcome, &r.Pickups, &r.Hazards, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = maze.Outcome(outcome)
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ProfileStats retrieves aggregated statistics for a profile.
func (s *Store) ProfileStats(profile string) (*ProfileStats, error) {
	stats := &ProfileStats{Profile: profile}

	highest, err := s.HighestLevel(profile)
	if err != nil {
		return nil, err
	}
	stats.HighestLevel = highest

	var playMs int64
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome IN (?, ?, ?)), 0),
		        COALESCE(SUM(outcome IN (?, ?)), 0),
		        COALESCE(SUM(pickups), 0), COALESCE(SUM(hazards), 0),
		        COALESCE(SUM(duration_ms), 0), MAX(created_at)
		 FROM runs WHERE profile = ?`,
		string(maze.OutcomeCleared), string(maze.OutcomeCompleted), string(maze.OutcomeTutorial),
		string(maze.OutcomeGameOver), string(maze.OutcomeFell),
		profile,
	).Scan(&stats.Runs, &stats.Cleared, &stats.GameOvers, &stats.Pickups, &stats.Hazards, &playMs, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get profile stats: %w", err)
	}
	stats.PlayTime = time.Duration(playMs) * time.Millisecond
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// Profiles lists every profile with progress or runs.
func (s *Store) Profiles() ([]string, error) {
	rows, err := s.db.Query(
		`SELECT profile FROM progress
		 UNION
		 SELECT profile FROM runs
		 ORDER BY profile`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return profiles, nil
}

// ClearProfile deletes a profile's progress and runs.
func (s *Store) ClearProfile(profile string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear profile: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM progress WHERE profile = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM runs WHERE profile = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot clear profile: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{
			"2006-01-02 15:04:05.999999999 -0700 MST",
			time.RFC3339Nano,
			"2006-01-02 15:04:05",
		} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
