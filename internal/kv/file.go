// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/ar-fit/internal/logger"
)

// fileSubstrate stores every key in one JSON document, the way a browser
// persists a profile's local storage. Other processes may share the file:
// reads reload the document when it changed on disk and every mutation is
// applied to a freshly read copy before the document is replaced.
type fileSubstrate struct {
	path   string
	logger *logger.Logger

	mu     sync.Mutex
	items  map[string]string
	seen   os.FileInfo
	closed bool
}

type filePersistedState struct {
	Items map[string]string `json:"items"`
}

// NewFile opens (or lazily creates) the JSON state file at path.
func NewFile(path string, log *logger.Logger) (Substrate, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty file path", ErrUnknownDriver)
	}

	s := &fileSubstrate{
		path:   path,
		logger: log,
	}
	if err := s.load(); err != nil {
		log.Err(err).Str("func", "NewFile").Str("path", path).Msg("error loading state file")
		return nil, err
	}

	log.Debug().Str("func", "NewFile").Str("path", path).Int("keys", len(s.items)).Msg("state file loaded")
	return s, nil
}

// load replaces the cached items with the document on disk. A missing or
// empty file reads as no keys. Must be called with s.mu held.
func (s *fileSubstrate) load() error {
	info, err := os.Stat(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat state file: %w", err)
	}

	items := make(map[string]string)
	data, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read state file: %w", err)
	}
	if len(data) > 0 {
		var st filePersistedState
		if err = json.Unmarshal(data, &st); err != nil {
			return fmt.Errorf("decode state file: %w", err)
		}
		if st.Items != nil {
			items = st.Items
		}
	}

	s.items = items
	s.seen = info
	return nil
}

// refresh reloads the document when another writer replaced it since it
// was last read. Must be called with s.mu held.
func (s *fileSubstrate) refresh() error {
	info, err := os.Stat(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat state file: %w", err)
	}
	if sameVersion(s.seen, info) {
		return nil
	}

	s.logger.Debug().Str("func", "fileSubstrate.refresh").Str("path", s.path).Msg("state file changed on disk, reloading")
	return s.load()
}

// sameVersion reports whether two stats describe the same file contents.
// Every write renames a new file into place, so the identity changes too.
func sameVersion(a, b os.FileInfo) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return os.SameFile(a, b) && a.ModTime().Equal(b.ModTime()) && a.Size() == b.Size()
}

// mutate applies change to a freshly read copy of the document and
// replaces the file with it. Must be called with s.mu held.
func (s *fileSubstrate) mutate(change func(items map[string]string) bool) error {
	if err := s.load(); err != nil {
		return err
	}

	next := make(map[string]string, len(s.items)+1)
	for k, v := range s.items {
		next[k] = v
	}
	if !change(next) {
		return nil
	}

	return s.persist(next)
}

// persist writes items through a temp file and renames it over the
// document. Must be called with s.mu held.
func (s *fileSubstrate) persist(items map[string]string) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Items: items}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err = tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write state file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write state file: %w", err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace state file: %w", err)
	}

	info, err := os.Stat(s.path)
	if err != nil {
		return fmt.Errorf("stat state file: %w", err)
	}
	s.items = items
	s.seen = info
	return nil
}

func (s *fileSubstrate) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", false, ErrClosed
	}
	if err := s.refresh(); err != nil {
		s.logger.Err(err).Str("func", "fileSubstrate.Get").Str("key", key).Msg("error reloading state file")
		return "", false, err
	}

	v, ok := s.items[key]
	return v, ok, nil
}

func (s *fileSubstrate) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	err := s.mutate(func(items map[string]string) bool {
		items[key] = value
		return true
	})
	if err != nil {
		s.logger.Err(err).Str("func", "fileSubstrate.Set").Str("key", key).Msg("error persisting state file")
		return err
	}
	return nil
}

func (s *fileSubstrate) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	err := s.mutate(func(items map[string]string) bool {
		if _, ok := items[key]; !ok {
			return false
		}
		delete(items, key)
		return true
	})
	if err != nil {
		s.logger.Err(err).Str("func", "fileSubstrate.Remove").Str("key", key).Msg("error persisting state file")
		return err
	}
	return nil
}

func (s *fileSubstrate) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}
