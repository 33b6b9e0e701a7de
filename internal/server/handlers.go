package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/types"
)

// ErrorResponse is the JSON body returned for request failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleScore scores a batch of resumes against one job description.
// Resumes score concurrently; results keep submission order.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing resumes or job_description")
		return
	}

	results := make([]types.ScoreResult, len(req.Resumes))

	var g errgroup.Group
	for i, resume := range req.Resumes {
		g.Go(func() error {
			id := resume.ID
			if id == "" {
				id = uuid.NewString()
			}

			record := s.extractor.Extract(resume.Text)
			report := s.engine.Score(record, req.JobDescription)

			results[i] = types.ScoreResult{
				ID:          id,
				Filename:    resume.Filename,
				ScoreReport: *report,
			}
			return nil
		})
	}
	// Scoring never fails per resume; the group only orders completion.
	_ = g.Wait()

	s.jsonResponse(w, http.StatusOK, types.ScoreResponse{Results: results})
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Warn("failed to encode response", zap.Error(err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, ErrorResponse{Error: message})
}
