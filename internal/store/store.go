// Package store handles SQLite persistence of timer presets.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/intervals/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrPresetNotFound is returned when no preset has the requested name.
var ErrPresetNotFound = errors.New("preset not found")

// Store wraps SQLite access for presets.
type Store struct {
	db *sql.DB
}

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
		`CREATE TABLE IF NOT EXISTS presets (
			name TEXT PRIMARY KEY,
			work_seconds INTEGER NOT NULL CHECK (work_seconds > 0),
			rest_seconds INTEGER NOT NULL CHECK (rest_seconds > 0),
			repetitions INTEGER NOT NULL CHECK (repetitions > 0),
			created_at TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SavePreset inserts a preset or replaces the one with the same name.
func (s *Store) SavePreset(ctx context.Context, p model.Preset) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return fmt.Errorf("preset name must not be empty")
	}
	if err := p.Config.Validate(); err != nil {
		return err
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO presets (name, work_seconds, rest_seconds, repetitions, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			work_seconds = excluded.work_seconds,
			rest_seconds = excluded.rest_seconds,
			repetitions = excluded.repetitions`,
		name,
		p.Config.WorkSeconds,
		p.Config.RestSeconds,
		p.Config.Repetitions,
		p.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// GetPreset loads a preset by name.
func (s *Store) GetPreset(ctx context.Context, name string) (model.Preset, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT name, work_seconds, rest_seconds, repetitions, created_at
		 FROM presets WHERE name = ?`, strings.TrimSpace(name))
	p, err := scanPreset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Preset{}, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	return p, err
}

// ListPresets returns all presets ordered by name.
func (s *Store) ListPresets(ctx context.Context) ([]model.Preset, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, work_seconds, rest_seconds, repetitions, created_at
		 FROM presets ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var presets []model.Preset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return presets, nil
}

// DeletePreset removes a preset by name.
func (s *Store) DeletePreset(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM presets WHERE name = ?`, strings.TrimSpace(name))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPreset(row scanner) (model.Preset, error) {
	var p model.Preset
	var createdAt string
	if err := row.Scan(&p.Name, &p.Config.WorkSeconds, &p.Config.RestSeconds, &p.Config.Repetitions, &createdAt); err != nil {
		return model.Preset{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return model.Preset{}, err
	}
	p.CreatedAt = parsed
	return p, nil
}
