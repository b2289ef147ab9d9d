// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/keyheat/internal/keystats"
	"github.com/verte-zerg/keyheat/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// HistoryLimit is the number of recent attempts kept in the WPM history.
const HistoryLimit = 60

// Setting names.
const (
	SettingTheme    = "theme"
	SettingKeyboard = "keyboard"
)

// Store wraps SQLite access for attempts, key stats and UI settings.
type Store struct {
	db *sql.DB
}

var _ keystats.Store = (*Store)(nil)

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Counter bumps are read-modify-write in one statement; a single
	// connection keeps them serialized.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			mode TEXT NOT NULL,
			wpm REAL NOT NULL,
			correct INTEGER NOT NULL,
			incorrect INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS key_stats (
			label TEXT PRIMARY KEY,
			hits INTEGER NOT NULL,
			errors INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			name TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_ended_at ON attempts(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// RecordAttempt stores a completed attempt.
func (s *Store) RecordAttempt(ctx context.Context, a model.Attempt) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (started_at, ended_at, mode, wpm, correct, incorrect, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.StartedAt.Format(time.RFC3339Nano),
		a.EndedAt.Format(time.RFC3339Nano),
		a.Mode,
		a.WPM,
		a.Correct,
		a.Incorrect,
		a.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Summary aggregates every recorded attempt.
func (s *Store) Summary(ctx context.Context) (model.Summary, error) {
	var sum model.Summary
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(wpm), 0), COALESCE(MAX(wpm), 0) FROM attempts`,
	).Scan(&sum.Attempts, &sum.TotalWPM, &sum.BestWPM)
	if err != nil {
		return model.Summary{}, err
	}
	if sum.Attempts > 0 {
		sum.AvgWPM = math.Round(sum.TotalWPM / float64(sum.Attempts))
	}
	return sum, nil
}

// History returns the WPM of the most recent attempts, oldest first.
func (s *Store) History(ctx context.Context) ([]float64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT wpm FROM (
			SELECT id, wpm FROM attempts ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`, HistoryLimit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var history []float64
	for rows.Next() {
		var wpm float64
		if err := rows.Scan(&wpm); err != nil {
			return nil, err
		}
		history = append(history, wpm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return history, nil
}

// Get returns the counters for label, zero when the key was never typed.
func (s *Store) Get(ctx context.Context, label string) (model.KeyStats, error) {
	var stats model.KeyStats
	err := s.db.QueryRowContext(ctx,
		`SELECT hits, errors FROM key_stats WHERE label = ?`, label,
	).Scan(&stats.Hits, &stats.Errors)
	if errors.Is(err, sql.ErrNoRows) {
		return model.KeyStats{}, nil
	}
	if err != nil {
		return model.KeyStats{}, err
	}
	return stats, nil
}

// Set replaces the counters for label.
func (s *Store) Set(ctx context.Context, label string, stats model.KeyStats) error {
	if label == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO key_stats (label, hits, errors) VALUES (?, ?, ?)
		 ON CONFLICT(label) DO UPDATE SET hits = excluded.hits, errors = excluded.errors`,
		label, stats.Hits, stats.Errors)
	return err
}

// Bump increments the counters for label atomically. An empty label is
// ignored.
func (s *Store) Bump(ctx context.Context, label string, outcome keystats.Outcome) error {
	if label == "" {
		return nil
	}
	delta := keystats.Apply(model.KeyStats{}, outcome)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO key_stats (label, hits, errors) VALUES (?, ?, ?)
		 ON CONFLICT(label) DO UPDATE SET hits = hits + excluded.hits, errors = errors + excluded.errors`,
		label, delta.Hits, delta.Errors)
	return err
}

// All returns every stored key record.
func (s *Store) All(ctx context.Context) (map[string]model.KeyStats, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT label, hits, errors FROM key_stats`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	result := map[string]model.KeyStats{}
	for rows.Next() {
		var label string
		var stats model.KeyStats
		if err := rows.Scan(&label, &stats.Hits, &stats.Errors); err != nil {
			return nil, err
		}
		result[label] = stats
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Reset drops every key record.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM key_stats`)
	return err
}

// ResetAll clears attempts and key stats. Settings are kept.
func (s *Store) ResetAll(ctx context.Context) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()
	for _, stmt := range []string{`DELETE FROM attempts`, `DELETE FROM key_stats`} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Setting returns a stored UI setting and whether it was present.
func (s *Store) Setting(ctx context.Context, name string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// SetSetting stores a UI setting.
func (s *Store) SetSetting(ctx context.Context, name, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`, name, value)
	return err
}
