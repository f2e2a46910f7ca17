package store

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultDebounce is the trailing save window when none is configured.
const DefaultDebounce = 300 * time.Millisecond

// DebouncedSaver coalesces rapid snapshot writes per session into one
// trailing write. Write failures are logged and swallowed; a save scheduled
// just before shutdown may be lost, which is an accepted limitation.
type DebouncedSaver struct {
	store Store
	delay time.Duration

	mu      sync.Mutex
	pending map[string]*pendingSave
}

type pendingSave struct {
	timer *time.Timer
	snap  *Snapshot
}

// NewDebouncedSaver wraps a store with a trailing debounce window. A
// non-positive delay uses the default.
func NewDebouncedSaver(store Store, delay time.Duration) *DebouncedSaver {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &DebouncedSaver{
		store:   store,
		delay:   delay,
		pending: make(map[string]*pendingSave),
	}
}

// Schedule records the latest snapshot for the session and (re)starts its
// trailing timer. Only the last snapshot scheduled within the window is
// written.
func (d *DebouncedSaver) Schedule(sessionID string, snap *Snapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if entry, ok := d.pending[sessionID]; ok {
		entry.snap = snap
		entry.timer.Reset(d.delay)
		return
	}

	entry := &pendingSave{snap: snap}
	entry.timer = time.AfterFunc(d.delay, func() {
		d.flush(sessionID)
	})
	d.pending[sessionID] = entry
}

// Cancel drops any pending write for the session.
func (d *DebouncedSaver) Cancel(sessionID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if entry, ok := d.pending[sessionID]; ok {
		entry.timer.Stop()
		delete(d.pending, sessionID)
	}
}

func (d *DebouncedSaver) flush(sessionID string) {
	d.mu.Lock()
	entry, ok := d.pending[sessionID]
	if ok {
		delete(d.pending, sessionID)
	}
	d.mu.Unlock()
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.store.Save(ctx, sessionID, entry.snap); err != nil {
		log.Printf("[store] debounced save failed for session %s: %v", sessionID, err)
	}
}
