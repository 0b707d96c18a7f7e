package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/punchlog/internal/constants"
)

// SQLiteStore keeps the cache in a single key-value table. It backs the
// same Store contract as DiskvStore for users who prefer one cache file
// over a directory.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

// NewSQLiteStore creates a store backed by the database file at path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}
	s.db = db

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS cache (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create cache table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) readJSON(ctx context.Context, key string, target interface{}) error {
	if s.db == nil {
		return errors.New("cache not initialized")
	}
	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM cache WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read cache key %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return fmt.Errorf("failed to parse cache key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) writeJSON(ctx context.Context, key string, value interface{}) error {
	if s.db == nil {
		return errors.New("cache not initialized")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache key %q: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO cache (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(data))
	if err != nil {
		return fmt.Errorf("failed to write cache key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) SavedTags(ctx context.Context) ([]string, error) {
	var tags []string
	if err := s.readJSON(ctx, constants.CacheKeySavedTags, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *SQLiteStore) SetSavedTags(ctx context.Context, tags []string) error {
	return s.writeJSON(ctx, constants.CacheKeySavedTags, tags)
}

func (s *SQLiteStore) RecentActivities(ctx context.Context) ([]string, error) {
	var activities []string
	if err := s.readJSON(ctx, constants.CacheKeyRecentActivities, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *SQLiteStore) SetRecentActivities(ctx context.Context, activities []string) error {
	return s.writeJSON(ctx, constants.CacheKeyRecentActivities, activities)
}

func (s *SQLiteStore) LastClockOut(ctx context.Context) (string, error) {
	var t string
	if err := s.readJSON(ctx, constants.CacheKeyLastClockOut, &t); err != nil {
		return "", err
	}
	return t, nil
}

func (s *SQLiteStore) SetLastClockOut(ctx context.Context, t string) error {
	return s.writeJSON(ctx, constants.CacheKeyLastClockOut, t)
}
