package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"cv-builder/internal/flow"
	"cv-builder/internal/profile"
	"cv-builder/internal/store"
)

// ---------------------------------------------------------------------
// Session Lifecycle Handlers
// ---------------------------------------------------------------------

// SessionState is the wire representation of a live session.
type SessionState struct {
	ID   string          `json:"id"`
	Flow flow.FlowState  `json:"flow"`
	UI   flow.UIState    `json:"ui"`
	Data profile.Profile `json:"data"`
}

func stateOf(s *flow.Session) SessionState {
	return SessionState{ID: s.ID, Flow: s.Flow, UI: s.UI, Data: s.Profile}
}

type CreateSessionRequest struct {
	SessionID string `json:"session_id"`
}

// handleCreateSession opens a session. When a session_id is supplied and a
// snapshot with the current version exists, the session resumes from it;
// unreadable or mismatched snapshots are discarded and the session starts
// fresh under the same ID.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess := flow.NewSession()
	if req.SessionID != "" {
		sess.ID = req.SessionID
		snap, err := s.store.Load(r.Context(), req.SessionID)
		switch {
		case err == nil:
			sess.Restore(snap.Data, snap.Flow, snap.UI)
		case errors.Is(err, store.ErrNotFound):
			// First visit under this ID.
		default:
			log.Printf("[server] discarding snapshot for session %s: %v", req.SessionID, err)
		}
	}
	sess.SetUndoDepth(s.undoDepth)

	s.mu.Lock()
	if existing, ok := s.sessions[sess.ID]; ok {
		// Re-opening a live session returns it untouched.
		sess = existing
	} else {
		s.sessions[sess.ID] = sess
	}
	state := stateOf(sess)
	s.mu.Unlock()

	s.jsonResponse(w, http.StatusCreated, state)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	sess, ok := s.sessions[r.PathValue("id")]
	if !ok {
		s.mu.Unlock()
		s.errorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	state := stateOf(sess)
	s.mu.Unlock()

	s.jsonResponse(w, http.StatusOK, state)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	s.saver.Cancel(id)
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete snapshot: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// session looks up a live session. Callers use the returned pointer only
// under s.mu.
func (s *Server) session(id string) (*flow.Session, bool) {
	sess, ok := s.sessions[id]
	return sess, ok
}

// persist schedules a debounced save of the session's current state.
// Called under s.mu.
func (s *Server) persist(sess *flow.Session) {
	s.saver.Schedule(sess.ID, store.NewSnapshot(sess))
}
