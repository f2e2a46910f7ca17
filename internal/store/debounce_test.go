package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStore counts saves and keeps the last snapshot per session.
type recordingStore struct {
	mu    sync.Mutex
	saves int
	last  map[string]*Snapshot
}

func newRecordingStore() *recordingStore {
	return &recordingStore{last: make(map[string]*Snapshot)}
}

func (r *recordingStore) Load(_ context.Context, sessionID string) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if snap, ok := r.last[sessionID]; ok {
		return snap, nil
	}
	return nil, ErrNotFound
}

func (r *recordingStore) Save(_ context.Context, sessionID string, snap *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	r.last[sessionID] = snap
	return nil
}

func (r *recordingStore) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.last, sessionID)
	return nil
}

func (r *recordingStore) stats() (int, map[string]*Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := make(map[string]*Snapshot, len(r.last))
	for k, v := range r.last {
		copied[k] = v
	}
	return r.saves, copied
}

func TestDebouncedSaverCoalesces(t *testing.T) {
	rec := newRecordingStore()
	saver := NewDebouncedSaver(rec, 20*time.Millisecond)

	first := sampleSnapshot()
	second := sampleSnapshot()
	second.Data.Identity.FirstName = "Jean"

	saver.Schedule("session-1", first)
	saver.Schedule("session-1", second)

	require.Eventually(t, func() bool {
		saves, _ := rec.stats()
		return saves == 1
	}, time.Second, 5*time.Millisecond)

	_, last := rec.stats()
	assert.Equal(t, "Jean", last["session-1"].Data.Identity.FirstName)
}

func TestDebouncedSaverPerSession(t *testing.T) {
	rec := newRecordingStore()
	saver := NewDebouncedSaver(rec, 10*time.Millisecond)

	saver.Schedule("session-1", sampleSnapshot())
	saver.Schedule("session-2", sampleSnapshot())

	require.Eventually(t, func() bool {
		saves, _ := rec.stats()
		return saves == 2
	}, time.Second, 5*time.Millisecond)
}

func TestDebouncedSaverCancel(t *testing.T) {
	rec := newRecordingStore()
	saver := NewDebouncedSaver(rec, 20*time.Millisecond)

	saver.Schedule("session-1", sampleSnapshot())
	saver.Cancel("session-1")

	time.Sleep(60 * time.Millisecond)
	saves, _ := rec.stats()
	assert.Equal(t, 0, saves)
}
