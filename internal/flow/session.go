package flow

import (
	"cv-builder/internal/importer"
	"cv-builder/internal/profile"
	"cv-builder/internal/render"
)

// DefaultUndoDepth is the undo stack capacity when none is configured.
const DefaultUndoDepth = 60

// FlowState is the persisted position in the state machine.
type FlowState struct {
	Step          Step `json:"step"`
	IdentityIndex int  `json:"identity_index"`
}

// Message is one transcript entry of the conversational UI.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Transcript roles.
const (
	RoleBot    = "bot"
	RoleUser   = "user"
	RoleSystem = "system"
)

// UIState is the persisted presentation state.
type UIState struct {
	SelectedTemplate string          `json:"selected_template"`
	ATSMode          bool            `json:"ats_mode"`
	Transcript       []Message       `json:"transcript,omitempty"`
	ImportDraft      *importer.Draft `json:"import_draft,omitempty"`
}

// undoPoint is one deep snapshot of the pre-mutation state.
type undoPoint struct {
	Profile profile.Profile
	Flow    FlowState
}

// Session is the complete state of one interview. It is not safe for
// concurrent use; callers serialize access (the server applies actions under
// its registry lock).
type Session struct {
	ID      string
	Profile profile.Profile
	Flow    FlowState
	UI      UIState

	undo      []undoPoint
	undoDepth int
}

// NewSession creates a session at the welcome step with an empty profile.
func NewSession() *Session {
	s := &Session{
		ID:        profile.NewID(),
		Profile:   profile.New(),
		Flow:      FlowState{Step: StepWelcome},
		UI:        UIState{SelectedTemplate: render.DefaultTemplate},
		undoDepth: DefaultUndoDepth,
	}
	s.say(RoleBot, promptWelcome)
	return s
}

// SetUndoDepth overrides the undo stack capacity. Values below 1 keep the
// default.
func (s *Session) SetUndoDepth(depth int) {
	if depth >= 1 {
		s.undoDepth = depth
	}
}

// Restore replaces the session state from a persisted snapshot. The undo
// history is not persisted and starts empty.
func (s *Session) Restore(p profile.Profile, flow FlowState, ui UIState) {
	s.Profile = p
	s.Flow = flow
	s.UI = ui
	s.undo = nil
}

// UndoDepth returns the current number of stored undo snapshots.
func (s *Session) UndoDepth() int {
	return len(s.undo)
}

// StageImport stores a parsed draft for later ApplyImport and records its
// preview in the transcript. A nil draft clears any staged import.
func (s *Session) StageImport(draft *importer.Draft) {
	s.UI.ImportDraft = draft
	s.say(RoleSystem, importer.Preview(draft))
}

// snapshot pushes the pre-mutation state, discarding the oldest entry when
// the stack is full.
func (s *Session) snapshot() {
	point := undoPoint{Profile: s.Profile.Clone(), Flow: s.Flow}
	for len(s.undo) >= s.undoDepth {
		s.undo = s.undo[1:]
	}
	s.undo = append(s.undo, point)
}

// restoreLast pops the most recent snapshot into the live state.
func (s *Session) restoreLast() error {
	if len(s.undo) == 0 {
		return ErrNothingToUndo
	}
	point := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.Profile = point.Profile
	s.Flow = point.Flow
	return nil
}

func (s *Session) say(role, text string) {
	if text == "" {
		return
	}
	s.UI.Transcript = append(s.UI.Transcript, Message{Role: role, Text: text})
}

func (s *Session) experienceByID(id string) *profile.Experience {
	for i := range s.Profile.Experiences {
		if s.Profile.Experiences[i].ID == id {
			return &s.Profile.Experiences[i]
		}
	}
	return nil
}
