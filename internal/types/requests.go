package types

import (
	"github.com/go-playground/validator/v10"
)

// ResumeInput is one resume submitted for scoring. ID and Filename are
// echoed back in the result; a missing ID is filled in by the server.
type ResumeInput struct {
	ID       string `json:"id,omitempty"`
	Filename string `json:"filename,omitempty"`
	Text     string `json:"text" validate:"required"`
}

// ScoreRequest is the batch scoring request body: one job description
// matched against one or more resumes.
type ScoreRequest struct {
	JobDescription string        `json:"job_description" validate:"required"`
	Resumes        []ResumeInput `json:"resumes" validate:"required,min=1,dive"`
}

// ScoreResult pairs a ScoreReport with the identity of the resume it was
// computed for.
type ScoreResult struct {
	ID       string `json:"id"`
	Filename string `json:"filename,omitempty"`
	ScoreReport
}

// ScoreResponse is the batch scoring response body. Results keep the order
// of the submitted resumes.
type ScoreResponse struct {
	Results []ScoreResult `json:"results"`
}

// Validate checks the score request fields
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
