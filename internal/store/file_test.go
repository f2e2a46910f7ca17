package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-builder/internal/flow"
	"cv-builder/internal/profile"
)

func sampleSnapshot() *Snapshot {
	p := profile.New()
	p.Identity.FirstName = "Marie"
	p.Identity.LastName = "Dupont"
	p.Skills.Hard = []string{"Python", "SQL"}
	p.Experiences = []profile.Experience{{
		ID:       profile.NewID(),
		Company:  "Acme",
		Role:     "Développeuse",
		StartYM:  "2021-01",
		EndYM:    "2023-01",
		Missions: []profile.Mission{{ID: profile.NewID(), Text: "Conception d'API"}},
	}}
	return &Snapshot{
		Version: CurrentVersion,
		Flow:    flow.FlowState{Step: flow.StepReview},
		UI:      flow.UIState{SelectedTemplate: "t1"},
		Data:    p,
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	snap := sampleSnapshot()
	require.NoError(t, fs.Save(ctx, "session-1", snap))

	loaded, err := fs.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, snap.Data, loaded.Data)
	assert.Equal(t, flow.StepReview, loaded.Flow.Step)
	assert.Equal(t, "t1", loaded.UI.SelectedTemplate)
}

func TestFileStoreMissing(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = fs.Load(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreVersionMismatch(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	stale := `{
	  "version": 2,
	  "flow": {"step": "welcome"},
	  "ui": {"selected_template": "t1", "ats_mode": false},
	  "data": {"identity": {}, "skills": {"hard": [], "soft": [], "interests": []}}
	}`
	path := filepath.Join(dir, "session-1.v3.json")
	require.NoError(t, os.WriteFile(path, []byte(stale), 0o644))

	_, err = fs.Load(context.Background(), "session-1")
	assert.ErrorIs(t, err, ErrVersionMismatch)
}

func TestFileStoreRejectsTamperedSnapshot(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	tampered := `{
	  "version": 3,
	  "flow": {"step": "teleport"},
	  "ui": {"selected_template": "t1", "ats_mode": false},
	  "data": {"identity": {}, "skills": {"hard": [], "soft": [], "interests": []}}
	}`
	path := filepath.Join(dir, "session-1.v3.json")
	require.NoError(t, os.WriteFile(path, []byte(tampered), 0o644))

	_, err = fs.Load(context.Background(), "session-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFileStoreDeleteRemovesLegacySnapshot(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, fs.Save(ctx, "session-1", sampleSnapshot()))
	legacy := filepath.Join(dir, "session-1.v2.json")
	require.NoError(t, os.WriteFile(legacy, []byte(`{}`), 0o644))

	require.NoError(t, fs.Delete(ctx, "session-1"))

	_, err = fs.Load(ctx, "session-1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, statErr := os.Stat(legacy)
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewSnapshotCapturesSession(t *testing.T) {
	s := flow.NewSession()
	s.Profile.Identity.FirstName = "Jean"

	snap := NewSnapshot(s)
	assert.Equal(t, CurrentVersion, snap.Version)
	assert.Equal(t, flow.StepWelcome, snap.Flow.Step)
	assert.Equal(t, "Jean", snap.Data.Identity.FirstName)
}
