package server

import (
	"encoding/json"
	"net/http"

	"cv-builder/internal/flow"
)

// ---------------------------------------------------------------------
// Interview Engine Handlers
// ---------------------------------------------------------------------

type ActionRequest struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	action, err := flow.DecodeAction(req.Type, req.Payload)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.applyAndRespond(w, r.PathValue("id"), action)
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	s.applyAndRespond(w, r.PathValue("id"), flow.Back{})
}

// applyAndRespond runs one engine action under the registry lock, schedules
// persistence, and answers with the resulting session state.
func (s *Server) applyAndRespond(w http.ResponseWriter, sessionID string, action flow.Action) {
	s.mu.Lock()
	sess, ok := s.session(sessionID)
	if !ok {
		s.mu.Unlock()
		s.errorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	if err := flow.Apply(sess, action); err != nil {
		state := stateOf(sess)
		s.mu.Unlock()
		s.jsonResponse(w, HTTPStatus(err), map[string]any{
			"error": err.Error(),
			"state": state,
		})
		return
	}

	s.persist(sess)
	state := stateOf(sess)
	s.mu.Unlock()

	s.jsonResponse(w, http.StatusOK, state)
}
