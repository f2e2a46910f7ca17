package server

import (
	"net/http"
	"strconv"

	"cv-builder/internal/export"
	"cv-builder/internal/profile"
	"cv-builder/internal/render"
	"cv-builder/internal/score"
)

// ---------------------------------------------------------------------
// Render, Score and Export Handlers
// ---------------------------------------------------------------------

// renderInput captures the session state needed outside the registry lock.
type renderInput struct {
	profile    profile.Profile
	templateID string
	atsMode    bool
}

// renderInputFor copies the profile and presentation state under the registry
// lock. Query parameters template and ats override the stored selection.
func (s *Server) renderInputFor(r *http.Request) (renderInput, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.session(r.PathValue("id"))
	if !ok {
		return renderInput{}, false
	}

	in := renderInput{
		profile:    sess.Profile.Clone(),
		templateID: sess.UI.SelectedTemplate,
		atsMode:    sess.UI.ATSMode,
	}
	if tpl := r.URL.Query().Get("template"); tpl != "" {
		in.templateID = tpl
	}
	if ats := r.URL.Query().Get("ats"); ats != "" {
		if v, err := strconv.ParseBool(ats); err == nil {
			in.atsMode = v
		}
	}
	return in, true
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	in, ok := s.renderInputFor(r)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	html, err := render.HTML(in.profile, in.templateID, in.atsMode)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	in, ok := s.renderInputFor(r)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, score.Evaluate(in.profile, in.atsMode))
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	in, ok := s.renderInputFor(r)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	html, err := render.HTML(in.profile, in.templateID, in.atsMode)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	pdf, err := export.PDF(r.Context(), html, s.chromePath)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "PDF export failed: "+err.Error())
		return
	}

	name := export.Filename(in.profile.Identity.FirstName, in.profile.Identity.LastName, "pdf")
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *Server) handleExportDOCX(w http.ResponseWriter, r *http.Request) {
	in, ok := s.renderInputFor(r)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	doc, err := export.DOCX(in.profile)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "DOCX export failed: "+err.Error())
		return
	}

	name := export.Filename(in.profile.Identity.FirstName, in.profile.Identity.LastName, "docx")
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}
