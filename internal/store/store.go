// Package store persists session snapshots as versioned JSON documents. A
// snapshot whose version does not match the current one is treated as absent;
// no migration between versions is performed.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cv-builder/internal/flow"
	"cv-builder/internal/profile"
	"cv-builder/schemas"
)

// CurrentVersion tags snapshots written by this build. Older versions are
// discarded on load.
const CurrentVersion = 3

// ErrNotFound signals that no snapshot exists for the session.
var ErrNotFound = errors.New("snapshot not found")

// ErrVersionMismatch signals a snapshot from another storage version.
// Callers treat it like ErrNotFound.
var ErrVersionMismatch = errors.New("snapshot version mismatch")

// Snapshot is the persisted form of one session.
type Snapshot struct {
	Version int             `json:"version"`
	Flow    flow.FlowState  `json:"flow"`
	UI      flow.UIState    `json:"ui"`
	Data    profile.Profile `json:"data"`
}

// NewSnapshot captures the persistable state of a session at the current
// version.
func NewSnapshot(s *flow.Session) *Snapshot {
	return &Snapshot{
		Version: CurrentVersion,
		Flow:    s.Flow,
		UI:      s.UI,
		Data:    s.Profile,
	}
}

// Store persists and retrieves session snapshots.
type Store interface {
	Load(ctx context.Context, sessionID string) (*Snapshot, error)
	Save(ctx context.Context, sessionID string, snap *Snapshot) error
	Delete(ctx context.Context, sessionID string) error
}

// DecodeSnapshot validates raw snapshot JSON against the embedded schema,
// then decodes and version-checks it.
func DecodeSnapshot(raw []byte) (*Snapshot, error) {
	if err := schemas.ValidateSnapshot(raw); err != nil {
		return nil, fmt.Errorf("invalid snapshot document: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.Version != CurrentVersion {
		return nil, ErrVersionMismatch
	}
	return &snap, nil
}
