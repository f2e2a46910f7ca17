package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON file per session under a data directory. The
// storage version is part of the filename so older snapshots never shadow
// current ones.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (fs *FileStore) path(sessionID string, version int) string {
	return filepath.Join(fs.dir, fmt.Sprintf("%s.v%d.json", filepath.Base(sessionID), version))
}

// Load reads and validates the session's snapshot file.
func (fs *FileStore) Load(_ context.Context, sessionID string) (*Snapshot, error) {
	raw, err := os.ReadFile(fs.path(sessionID, CurrentVersion))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return DecodeSnapshot(raw)
}

// Save writes the snapshot atomically via a temp file and rename.
func (fs *FileStore) Save(_ context.Context, sessionID string, snap *Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	target := fs.path(sessionID, snap.Version)
	tmp, err := os.CreateTemp(fs.dir, "snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to flush snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Delete removes the session's snapshot file, along with any leftover from
// the previous storage version.
func (fs *FileStore) Delete(_ context.Context, sessionID string) error {
	if err := os.Remove(fs.path(sessionID, CurrentVersion)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	// Previous-version cleanup is best effort.
	os.Remove(fs.path(sessionID, CurrentVersion-1))
	return nil
}
