package server

import (
	"encoding/json"
	"net/http"
	"os"

	"cv-builder/internal/extract"
	"cv-builder/internal/flow"
	"cv-builder/internal/importer"
)

// maxUploadBytes bounds in-memory parsing of uploaded CV files.
const maxUploadBytes = 10 << 20

// ---------------------------------------------------------------------
// Import Handlers
// ---------------------------------------------------------------------

type ImportTextRequest struct {
	Text string `json:"text"`
}

// ImportPreview reports what the heuristic parser recognized in the supplied
// text, before the draft is applied to the profile.
type ImportPreview struct {
	Preview string          `json:"preview"`
	Draft   *importer.Draft `json:"draft,omitempty"`
}

func (s *Server) handleImportText(w http.ResponseWriter, r *http.Request) {
	var req ImportTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.stageImport(w, r.PathValue("id"), req.Text)
}

func (s *Server) handleImportFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	if !extract.Supported(header.Filename) {
		s.errorResponse(w, http.StatusUnsupportedMediaType, "Unsupported file type: "+header.Filename)
		return
	}

	text, err := extract.FromReader(os.TempDir(), header.Filename, file)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Failed to extract text: "+err.Error())
		return
	}

	s.stageImport(w, r.PathValue("id"), text)
}

func (s *Server) handleImportApply(w http.ResponseWriter, r *http.Request) {
	s.applyAndRespond(w, r.PathValue("id"), flow.ApplyImport{})
}

// stageImport parses raw text and stores the resulting draft on the session
// for a later apply. Unusable text answers 422 without touching the session.
func (s *Server) stageImport(w http.ResponseWriter, sessionID, text string) {
	draft := importer.ParseFreeText(text)
	if draft == nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, importer.Preview(nil))
		return
	}

	s.mu.Lock()
	sess, ok := s.session(sessionID)
	if !ok {
		s.mu.Unlock()
		s.errorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	sess.StageImport(draft)
	s.persist(sess)
	s.mu.Unlock()

	s.jsonResponse(w, http.StatusOK, ImportPreview{
		Preview: importer.Preview(draft),
		Draft:   draft,
	})
}
