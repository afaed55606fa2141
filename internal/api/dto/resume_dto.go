package dto

// ResumeRequest payload for PUT /resume.
type ResumeRequest struct {
	Resume *string `json:"resume"`
}

// ResumeResponse body of GET /resume.
type ResumeResponse struct {
	Resume string `json:"resume"`
}
