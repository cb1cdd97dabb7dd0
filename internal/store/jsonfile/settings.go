// Package jsonfile provides JSON file-based stores.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/hay-kot/efie/internal/core/settings"
)

// SettingsStore implements settings.Store using a JSON file for persistence.
// Reads take a shared flock on a sibling lock file and writes take an
// exclusive one, so the CLI and a running TUI can share the file.
type SettingsStore struct {
	path string
	mu   sync.RWMutex
}

// NewSettingsStore creates a new JSON file settings store at the given path.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// Path returns the backing file path.
func (s *SettingsStore) Path() string {
	return s.path
}

// Load returns the persisted settings decoded over settings.Default, so any
// field missing from the file keeps its default value.
func (s *SettingsStore) Load(ctx context.Context) (settings.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st settings.Settings
	err := s.withFileLock(syscall.LOCK_SH, func() error {
		var err error
		st, err = s.load()
		return err
	})
	return st, err
}

// Save overwrites the settings file with st.
func (s *SettingsStore) Save(ctx context.Context, st settings.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withFileLock(syscall.LOCK_EX, func() error {
		return s.save(st)
	})
}

// Update applies fn to the stored settings and writes the result while
// holding the exclusive lock.
func (s *SettingsStore) Update(ctx context.Context, fn func(*settings.Settings)) (settings.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var st settings.Settings
	err := s.withFileLock(syscall.LOCK_EX, func() error {
		var err error
		st, err = s.load()
		if err != nil {
			return err
		}

		fn(&st)
		return s.save(st)
	})
	if err != nil {
		return settings.Settings{}, err
	}
	return st, nil
}

func (s *SettingsStore) lockPath() string {
	return s.path + ".lock"
}

// withFileLock acquires a file lock, executes fn, then releases the lock.
func (s *SettingsStore) withFileLock(lockType int, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	f, err := os.OpenFile(s.lockPath(), os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	if err := syscall.Flock(int(f.Fd()), lockType); err != nil {
		return fmt.Errorf("acquire file lock: %w", err)
	}
	defer syscall.Flock(int(f.Fd()), syscall.LOCK_UN) //nolint:errcheck

	return fn()
}

// load reads the settings file from disk.
// Returns defaults if the file doesn't exist or is empty.
func (s *SettingsStore) load() (settings.Settings, error) {
	st := settings.Default()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return settings.Settings{}, fmt.Errorf("read settings file: %w", err)
	}

	if len(data) == 0 {
		return st, nil
	}

	if err := json.Unmarshal(data, &st); err != nil {
		return settings.Settings{}, fmt.Errorf("parse settings file: %w", err)
	}

	return st, nil
}

// save writes the settings file to disk atomically.
func (s *SettingsStore) save(st settings.Settings) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
