// Package kvstore is a file-backed key/value store holding whole-value JSON
// snapshots, the local analogue of a browser's localStorage: synchronous
// get/set/remove, no transactions, best-effort durability.
package kvstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/xid"
	"github.com/valyala/fastjson"
	"go.uber.org/zap"
)

// ErrUnavailable is returned by Set when the value cannot be written to disk.
// Callers keep their in-memory state and carry on; durability is lost, nothing else.
var ErrUnavailable = errors.New("kv store unavailable")

// Store maps string keys to JSON blobs, one file per key under dir.
type Store struct {
	logger *zap.SugaredLogger
	dir    string
	mu     sync.Mutex
}

// Open ensures dir exists and returns a Store over it.
func Open(logger *zap.SugaredLogger, dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &Store{
		logger: logger,
		dir:    dir,
	}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get returns the stored blob for key. A missing, unreadable or malformed
// value is reported as absent, never as an error: the caller falls back to
// its seed data.
func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warnf("Reading key %q: %v", key, err)
		}
		return nil, false
	}

	if err := fastjson.ValidateBytes(raw); err != nil {
		s.logger.Warnf("Stored value for key %q is not valid JSON, treating as absent: %v", key, err)
		return nil, false
	}

	return raw, true
}

// Set marshals v and replaces the value under key. The blob is written to a
// temp file first and renamed over the target, so a crashed write never
// leaves a half-written value behind the key.
func (s *Store) Set(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path(key) + "." + xid.New().String() + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		s.logger.Warnf("Writing key %q: %v", key, err)
		return ErrUnavailable
	}

	if err := os.Rename(tmp, s.path(key)); err != nil {
		s.logger.Warnf("Replacing key %q: %v", key, err)
		os.Remove(tmp)
		return ErrUnavailable
	}

	return nil
}

// Remove deletes the value under key. Removing an absent key is a no-op.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.logger.Warnf("Removing key %q: %v", key, err)
	}
}
