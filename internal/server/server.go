// Package server provides the HTTP REST API for the CV wizard.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"cv-builder/internal/flow"
	"cv-builder/internal/store"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      store.Store
	saver      *store.DebouncedSaver
	chromePath string
	undoDepth  int

	// Sessions are single-threaded: every engine application happens under mu.
	mu       sync.Mutex
	sessions map[string]*flow.Session
}

// Config holds server configuration
type Config struct {
	Port         int
	Store        store.Store
	SaveDebounce time.Duration
	UndoDepth    int
	ChromePath   string
}

// New creates a new server instance
func New(cfg Config) *Server {
	s := &Server{
		store:      cfg.Store,
		saver:      store.NewDebouncedSaver(cfg.Store, cfg.SaveDebounce),
		chromePath: cfg.ChromePath,
		undoDepth:  cfg.UndoDepth,
		sessions:   make(map[string]*flow.Session),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF export holds the connection open
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler builds the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Session lifecycle
	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDeleteSession)

	// Interview engine
	mux.HandleFunc("POST /sessions/{id}/actions", s.handleAction)
	mux.HandleFunc("POST /sessions/{id}/undo", s.handleUndo)

	// Free-text import
	mux.HandleFunc("POST /sessions/{id}/import/text", s.handleImportText)
	mux.HandleFunc("POST /sessions/{id}/import/file", s.handleImportFile)
	mux.HandleFunc("POST /sessions/{id}/import/apply", s.handleImportApply)

	// Rendering, scoring and widget suggestions
	mux.HandleFunc("GET /sessions/{id}/render", s.handleRender)
	mux.HandleFunc("GET /sessions/{id}/score", s.handleScore)
	mux.HandleFunc("GET /sessions/{id}/suggestions", s.handleSuggestions)

	// Export
	mux.HandleFunc("GET /sessions/{id}/export/pdf", s.handleExportPDF)
	mux.HandleFunc("GET /sessions/{id}/export/docx", s.handleExportDOCX)

	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withLogging(s.withCORS(mux))
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[server] listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[server] error: %v", err)
		}
	}()

	<-stop
	log.Println("[server] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.flushSessions(ctx)
	log.Println("[server] stopped")
	return nil
}

// flushSessions writes every live session synchronously so a pending debounce
// cannot be lost on shutdown.
func (s *Server) flushSessions(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		s.saver.Cancel(id)
		if err := s.store.Save(ctx, id, store.NewSnapshot(sess)); err != nil {
			log.Printf("[server] final save failed for session %s: %v", id, err)
		}
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[server] error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
