package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/resume"
)

const maxUploadBytes = 10 << 20

// User-facing failure messages for the analyze endpoint.
const (
	msgNoFile        = "No file uploaded."
	msgInvalidType   = "Invalid file type. Only PDF, DOC, DOCX, TXT, and RTF are allowed."
	msgUnextractable = "Could not extract text from the file. It might be empty or corrupted."
	msgMissingAPIKey = "Server configuration error: Gemini API key is not set."
	msgAIFailure     = "Failed to get a valid response from the AI service."
	msgUnexpected    = "An unexpected error occurred on the server."
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func respondData(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, map[string]any{"success": true, "data": data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]any{"success": false, "message": message})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyzeResume accepts a multipart upload in the "resume" field,
// extracts its text, and runs the AI analysis. With a "session" query
// parameter the parsed document also replaces that session's document.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	if s.apiKey == "" {
		respondError(w, http.StatusInternalServerError, msgMissingAPIKey)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, msgNoFile)
		return
	}
	file, header, err := r.FormFile("resume")
	if err != nil {
		respondError(w, http.StatusBadRequest, msgNoFile)
		return
	}
	defer func() { _ = file.Close() }()

	mimeType := header.Header.Get("Content-Type")
	if !ingestion.Allowed(mimeType) {
		respondError(w, http.StatusBadRequest, msgInvalidType)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, msgUnextractable)
		return
	}

	text, err := s.extract(data, mimeType)
	if err != nil {
		log.Printf("Extraction failed: %v", err)
		var unsupported *ingestion.UnsupportedTypeError
		if errors.As(err, &unsupported) {
			respondError(w, http.StatusBadRequest, msgInvalidType)
			return
		}
		respondError(w, http.StatusBadRequest, msgUnextractable)
		return
	}

	result, err := s.parse(r.Context(), text)
	if err != nil {
		log.Printf("Resume analysis failed: %v", err)
		respondError(w, http.StatusInternalServerError, msgAIFailure)
		return
	}

	if sid := r.URL.Query().Get("session"); sid != "" {
		session, err := s.sessions.Get(sid)
		if err != nil {
			respondError(w, HTTPStatus(err), err.Error())
			return
		}
		session.Controller.Replace(result.Document)
	}

	respondData(w, http.StatusOK, result)
}

// session resolves the {id} path value, writing a 404 on miss.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *Session {
	session, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		respondError(w, HTTPStatus(err), err.Error())
		return nil
	}
	return session
}

func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	session := s.sessions.Create(resume.DefaultDocument())
	respondData(w, http.StatusCreated, map[string]any{
		"sessionId":    session.ID,
		"document":     session.Controller.Snapshot(),
		"template":     session.Controller.Template().String(),
		"openSections": session.Controller.OpenSections(),
	})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if session == nil {
		return
	}
	respondData(w, http.StatusOK, session.Controller.Snapshot())
}

func (s *Server) handleApplyEdit(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if session == nil {
		return
	}

	var edit resume.Edit
	if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(edit); err != nil {
		respondError(w, http.StatusBadRequest, (&ErrValidation{Message: err.Error()}).Error())
		return
	}

	doc, err := session.Controller.Apply(edit)
	if err != nil {
		respondError(w, HTTPStatus(err), err.Error())
		return
	}
	respondData(w, http.StatusOK, doc)
}

func (s *Server) handleSelectTemplate(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if session == nil {
		return
	}

	var body struct {
		Template string `json:"template"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	template, err := rendering.ParseTemplate(body.Template)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	session.Controller.SelectTemplate(template)
	respondData(w, http.StatusOK, map[string]string{"template": template.String()})
}

func (s *Server) handleToggleSection(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if session == nil {
		return
	}

	var body struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Title == "" {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	open := session.Controller.ToggleSection(body.Title)
	respondData(w, http.StatusOK, map[string]any{"title": body.Title, "open": open})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if session == nil {
		return
	}

	html, err := session.Controller.Preview()
	if err != nil {
		respondError(w, http.StatusInternalServerError, msgUnexpected)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, html)
}

func (s *Server) handleExportText(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if session == nil {
		return
	}

	doc := session.Controller.Snapshot()
	body := export.PlainText(doc)
	writeAttachment(w, &export.Artifact{
		Filename:    export.FileName(doc.Name, "txt"),
		ContentType: "text/plain; charset=utf-8",
		Data:        []byte(body),
	})
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if session == nil {
		return
	}

	artifact, err := session.Exports.Do(export.FormatPDF, func() (*export.Artifact, error) {
		doc, html, err := session.Controller.PreviewDocument()
		if err != nil {
			return nil, err
		}
		data, err := s.pdf.Export(r.Context(), html)
		if err != nil {
			return nil, err
		}
		return &export.Artifact{
			Filename:    export.FileName(doc.Name, "pdf"),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	})
	s.respondArtifact(w, artifact, err, "PDF")
}

func (s *Server) handleExportDOCX(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if session == nil {
		return
	}

	artifact, err := session.Exports.Do(export.FormatDOCX, func() (*export.Artifact, error) {
		doc, html, err := session.Controller.PreviewDocument()
		if err != nil {
			return nil, err
		}
		data, err := s.docx.Convert(html)
		if err != nil {
			return nil, err
		}
		return &export.Artifact{
			Filename:    export.FileName(doc.Name, "docx"),
			ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			Data:        data,
		}, nil
	})
	s.respondArtifact(w, artifact, err, "DOCX")
}

func (s *Server) respondArtifact(w http.ResponseWriter, artifact *export.Artifact, err error, format string) {
	if errors.Is(err, export.ErrExportInFlight) {
		respondError(w, http.StatusConflict, fmt.Sprintf("A %s export is already in progress.", format))
		return
	}
	if err != nil {
		log.Printf("%s export failed: %v", format, err)
		respondError(w, http.StatusInternalServerError, msgUnexpected)
		return
	}
	writeAttachment(w, artifact)
}

func writeAttachment(w http.ResponseWriter, artifact *export.Artifact) {
	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Data)
}
