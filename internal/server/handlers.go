package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-scanner/internal/assist"
	"github.com/jonathan/resume-scanner/internal/ats"
	"github.com/jonathan/resume-scanner/internal/extraction"
	"github.com/jonathan/resume-scanner/internal/ingestion"
	"github.com/jonathan/resume-scanner/internal/rendering"
	"github.com/jonathan/resume-scanner/internal/types"
)

// maxUploadSize bounds resume file uploads at 10 MB.
const maxUploadSize = 10 << 20

// decodeJSON decodes the request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxUploadSize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return nil
}

// handleParse extracts a structured resume from plain text.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req types.ParseRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, extraction.Parse(req.Text))
}

// handleScan scores resume text against an optional job description.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req types.ScanRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ats.Scan(req.ResumeText, req.JobDescription))
}

// handleRender turns a structured resume back into scannable plain text.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var resume types.Resume
	if err := decodeJSON(r, &resume); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"text": rendering.ResumeToText(&resume)})
}

// handleExtract accepts a multipart file upload (PDF, DOCX, or plain text),
// extracts its text, and parses it in one round trip.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid multipart form: %v", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	text, err := ingestion.FromReader(file, header.Filename)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"text":   text,
		"resume": extraction.Parse(text),
	})
}

// handleJobDescription fetches a job posting URL and returns its cleaned text.
func (s *Server) handleJobDescription(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if req.URL == "" {
		s.errorResponse(w, http.StatusBadRequest, "url is required")
		return
	}

	text, err := ingestion.JobDescriptionFromURL(r.Context(), req.URL, s.verbose)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"text": text})
}

// handleAssist generates resume content with the configured model.
func (s *Server) handleAssist(w http.ResponseWriter, r *http.Request) {
	if s.llm == nil {
		err := &ErrAssistUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.AssistRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	content, err := assist.Improve(r.Context(), s.llm, assist.Mode(req.Mode), req.Text, req.JobDescription)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"content": content})
}
