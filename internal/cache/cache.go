package cache

import (
	"context"
	"strings"
)

// Store is the persistent key-value cache for auxiliary entry state.
// Each value is an independent key; reads of never-written keys return
// zero values, not errors.
type Store interface {
	Init() error
	Close() error

	SavedTags(ctx context.Context) ([]string, error)
	SetSavedTags(ctx context.Context, tags []string) error
	RecentActivities(ctx context.Context) ([]string, error)
	SetRecentActivities(ctx context.Context, activities []string) error
	LastClockOut(ctx context.Context) (string, error)
	SetLastClockOut(ctx context.Context, t string) error
}

// Open selects a backend by path shape: paths ending in .db open a
// SQLite store, anything else is treated as a diskv directory.
func Open(path string) Store {
	if strings.HasSuffix(path, ".db") {
		return NewSQLiteStore(path)
	}
	return NewDiskvStore(path)
}
