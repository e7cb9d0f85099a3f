package types

import "github.com/go-playground/validator/v10"

// ScanRequest represents the request body for the scan endpoint.
type ScanRequest struct {
	ResumeText     string `json:"resumeText" validate:"required"`
	JobDescription string `json:"jobDescription,omitempty"`
}

// ParseRequest represents the request body for the parse endpoint.
type ParseRequest struct {
	Text string `json:"text" validate:"required"`
}

// AssistRequest represents the request body for the AI writing assistant endpoint.
type AssistRequest struct {
	Mode           string `json:"mode" validate:"required,oneof=summary achievements cover-letter"`
	Text           string `json:"text" validate:"required"`
	JobDescription string `json:"jobDescription,omitempty"`
}

// Validate validates the ScanRequest using the validator.
func (r *ScanRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ParseRequest using the validator.
func (r *ParseRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AssistRequest using the validator.
func (r *AssistRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
