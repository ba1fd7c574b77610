package todo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// MemoryBackend keeps snapshots in memory.
type MemoryBackend struct {
	mu   sync.Mutex
	snap Snapshot
}

// NewMemoryBackend returns a backend seeded with the given tasks.
func NewMemoryBackend(tasks ...Task) *MemoryBackend {
	return &MemoryBackend{snap: Snapshot{Tasks: tasks}}
}

// Load implements Backend.
func (m *MemoryBackend) Load() (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap.clone(), nil
}

// Update implements Backend.
func (m *MemoryBackend) Update(fn func(*Snapshot) error) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.snap.clone()
	if err := fn(&next); err != nil {
		return Snapshot{}, err
	}
	m.snap = next
	return next.clone(), nil
}

// FileBackend stores snapshots as JSON on disk.
type FileBackend struct {
	Path string
}

// NewFileBackend returns a backend for the given file path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{Path: path}
}

// Load reads the snapshot file.
// Returns an empty snapshot if the file doesn't exist.
func (f *FileBackend) Load() (Snapshot, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{Tasks: []Task{}}, nil
		}
		return Snapshot{}, fmt.Errorf("failed to read tasks file: %w", err)
	}

	if err := validateSnapshot(data); err != nil {
		return Snapshot{}, err
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("failed to unmarshal tasks: %w", err)
	}
	if s.Tasks == nil {
		s.Tasks = []Task{}
	}
	return s, nil
}

// Update re-reads the file, applies fn and writes the result while holding
// an exclusive lock. Other processes sharing the file see either the old or
// the new snapshot. An error from fn is returned as is and nothing is written.
func (f *FileBackend) Update(fn func(*Snapshot) error) (Snapshot, error) {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Snapshot{}, fmt.Errorf("failed to create data directory: %w", err)
	}

	var out Snapshot
	err := f.withLock(func() error {
		snap, err := f.Load()
		if err != nil {
			return err
		}
		if err := fn(&snap); err != nil {
			return err
		}
		if err := f.write(snap); err != nil {
			return err
		}
		out = snap
		return nil
	})
	if err != nil {
		return Snapshot{}, err
	}
	return out, nil
}

// write replaces the tasks file. Callers must hold the lock.
func (f *FileBackend) write(s Snapshot) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	// Write to temp file and rename for atomicity
	tempPath := f.Path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write tasks file: %w", err)
	}
	if err := os.Rename(tempPath, f.Path); err != nil {
		return fmt.Errorf("failed to rename tasks file: %w", err)
	}
	return nil
}

// withLock executes fn while holding an exclusive lock on the lock file.
func (f *FileBackend) withLock(fn func() error) error {
	lockFile, err := os.OpenFile(f.Path+".lock", os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}
	defer func() {
		if err := lockFile.Close(); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: failed to close lock file: %v\n", err)
		}
	}()

	if err := acquireLock(lockFile); err != nil {
		return err
	}
	defer func() {
		if err := releaseLock(lockFile); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}()

	return fn()
}
