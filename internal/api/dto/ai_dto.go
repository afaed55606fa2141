package dto

import "github.com/spec-kit/job-tracker/internal/assistant"

// GenerateRequest payload shared by the AI endpoints.
type GenerateRequest struct {
	JobDescription string `json:"jobDescription"`
	Resume         string `json:"resume"`
	Company        string `json:"company"`
	Position       string `json:"position"`
}

// ToAssistant converts the payload into an assistant request.
func (r GenerateRequest) ToAssistant() assistant.Request {
	return assistant.Request{
		JobDescription: r.JobDescription,
		Resume:         r.Resume,
		Company:        r.Company,
		Position:       r.Position,
	}
}

// GenerateResponse carries the provider's text unmodified.
type GenerateResponse struct {
	Result string `json:"result"`
}
