package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/julianstephens/punchlog/internal/constants"
)

// DiskvStore persists each cache key as one JSON file under a base
// directory.
type DiskvStore struct {
	path string
	d    *diskv.Diskv
}

// NewDiskvStore creates a store rooted at the given directory.
func NewDiskvStore(path string) *DiskvStore {
	return &DiskvStore{path: path}
}

func (s *DiskvStore) Init() error {
	if err := os.MkdirAll(s.path, 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	s.d = diskv.New(diskv.Options{
		BasePath:     s.path,
		CacheSizeMax: 64 * 1024,
	})
	return nil
}

func (s *DiskvStore) Close() error {
	return nil
}

func (s *DiskvStore) readJSON(key string, target interface{}) error {
	if s.d == nil {
		return errors.New("cache not initialized")
	}
	data, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Never written; leave the zero value in place.
			return nil
		}
		return fmt.Errorf("failed to read cache key %q: %w", key, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse cache key %q: %w", key, err)
	}
	return nil
}

func (s *DiskvStore) writeJSON(key string, value interface{}) error {
	if s.d == nil {
		return errors.New("cache not initialized")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache key %q: %w", key, err)
	}
	if err := s.d.Write(key, data); err != nil {
		return fmt.Errorf("failed to write cache key %q: %w", key, err)
	}
	return nil
}

func (s *DiskvStore) SavedTags(context.Context) ([]string, error) {
	var tags []string
	if err := s.readJSON(constants.CacheKeySavedTags, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *DiskvStore) SetSavedTags(_ context.Context, tags []string) error {
	return s.writeJSON(constants.CacheKeySavedTags, tags)
}

func (s *DiskvStore) RecentActivities(context.Context) ([]string, error) {
	var activities []string
	if err := s.readJSON(constants.CacheKeyRecentActivities, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *DiskvStore) SetRecentActivities(_ context.Context, activities []string) error {
	return s.writeJSON(constants.CacheKeyRecentActivities, activities)
}

func (s *DiskvStore) LastClockOut(context.Context) (string, error) {
	var t string
	if err := s.readJSON(constants.CacheKeyLastClockOut, &t); err != nil {
		return "", err
	}
	return t, nil
}

func (s *DiskvStore) SetLastClockOut(_ context.Context, t string) error {
	return s.writeJSON(constants.CacheKeyLastClockOut, t)
}
