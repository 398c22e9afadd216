// Package server provides the HTTP API for the resume builder: resume
// upload and analysis, session editing, preview, and exports.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/parsing"
)

// Config holds server configuration.
type Config struct {
	Port   int
	APIKey string
}

// Server is the HTTP server. Its capabilities (text extraction, LLM parse,
// browser rendering, DOCX conversion) are fields so tests can substitute
// fakes.
type Server struct {
	httpServer *http.Server
	sessions   *SessionStore
	validate   *validator.Validate
	apiKey     string

	extract func(data []byte, mimeType string) (string, error)
	parse   func(ctx context.Context, text string) (*parsing.Result, error)
	pdf     *export.PDFExporter
	docx    export.DocxConverter
}

// New creates a server with production capabilities wired in.
func New(cfg Config) *Server {
	s := &Server{
		sessions: NewSessionStore(),
		validate: validator.New(),
		apiKey:   cfg.APIKey,
		extract:  ingestion.ExtractText,
		pdf:      export.NewPDFExporter(export.NewChromeRenderer()),
		docx:     export.NewWordConverter(),
	}
	s.parse = func(ctx context.Context, text string) (*parsing.Result, error) {
		client, err := llm.NewGeminiClient(ctx, nil, s.apiKey)
		if err != nil {
			return nil, &parsing.APICallError{Message: "failed to create LLM client", Cause: err}
		}
		defer func() { _ = client.Close() }()
		return parsing.ParseResume(ctx, client, text)
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // browser exports can be slow
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/analyze-resume", s.handleAnalyzeResume)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("GET /sessions/{id}/document", s.handleGetDocument)
	mux.HandleFunc("POST /sessions/{id}/edits", s.handleApplyEdit)
	mux.HandleFunc("PUT /sessions/{id}/template", s.handleSelectTemplate)
	mux.HandleFunc("POST /sessions/{id}/sections/toggle", s.handleToggleSection)
	mux.HandleFunc("GET /sessions/{id}/preview", s.handlePreview)
	mux.HandleFunc("GET /sessions/{id}/export/text", s.handleExportText)
	mux.HandleFunc("POST /sessions/{id}/export/pdf", s.handleExportPDF)
	mux.HandleFunc("POST /sessions/{id}/export/docx", s.handleExportDOCX)

	return mux
}

// Start begins listening and blocks until an interrupt, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers. The SPA may be served from a different origin.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}
