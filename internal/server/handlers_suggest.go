package server

import (
	"net/http"

	"cv-builder/internal/suggest"
)

// ---------------------------------------------------------------------
// Suggestion Handler
// ---------------------------------------------------------------------

// Suggestions seeds the tag and language widgets. Hard skills depend on the
// job title collected during the identity step.
type Suggestions struct {
	HardSkills []string `json:"hard_skills"`
	SoftSkills []string `json:"soft_skills"`
	Interests  []string `json:"interests"`
	Languages  []string `json:"languages"`
	Levels     []string `json:"levels"`
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	sess, ok := s.session(r.PathValue("id"))
	if !ok {
		s.mu.Unlock()
		s.errorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	jobTitle := sess.Profile.Identity.JobTitle
	s.mu.Unlock()

	s.jsonResponse(w, http.StatusOK, Suggestions{
		HardSkills: suggest.HardSkills(jobTitle),
		SoftSkills: suggest.SoftSkills(),
		Interests:  suggest.Interests(),
		Languages:  suggest.Languages(),
		Levels:     suggest.Levels(),
	})
}
