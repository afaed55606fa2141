package dto

import (
	"time"

	"github.com/spec-kit/job-tracker/internal/domain"
)

// CreateJobRequest payload.
type CreateJobRequest struct {
	Company        string           `json:"company"`
	Position       string           `json:"position"`
	Status         domain.JobStatus `json:"status"`
	Location       string           `json:"location"`
	Salary         string           `json:"salary"`
	JobDescription string           `json:"jobDescription"`
	Notes          string           `json:"notes"`
}

// UpdateJobRequest payload. Absent fields are left unchanged.
type UpdateJobRequest struct {
	Company        *string           `json:"company"`
	Position       *string           `json:"position"`
	Status         *domain.JobStatus `json:"status"`
	Location       *string           `json:"location"`
	Salary         *string           `json:"salary"`
	JobDescription *string           `json:"jobDescription"`
	Notes          *string           `json:"notes"`
}

// Patch converts the request into a domain patch.
func (r UpdateJobRequest) Patch() domain.JobPatch {
	return domain.JobPatch{
		Company:        r.Company,
		Position:       r.Position,
		Status:         r.Status,
		Location:       r.Location,
		Salary:         r.Salary,
		JobDescription: r.JobDescription,
		Notes:          r.Notes,
	}
}

// JobResponse is a job as returned to its owner.
type JobResponse struct {
	ID             string           `json:"id"`
	UserID         string           `json:"userId"`
	Company        string           `json:"company"`
	Position       string           `json:"position"`
	Status         domain.JobStatus `json:"status"`
	Location       string           `json:"location"`
	Salary         string           `json:"salary"`
	JobDescription string           `json:"jobDescription"`
	Notes          string           `json:"notes"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

func NewJobResponse(job *domain.Job) JobResponse {
	return JobResponse{
		ID:             job.ID,
		UserID:         job.UserID,
		Company:        job.Company,
		Position:       job.Position,
		Status:         job.Status,
		Location:       job.Location,
		Salary:         job.Salary,
		JobDescription: job.JobDescription,
		Notes:          job.Notes,
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
	}
}

func NewJobResponses(jobs []domain.Job) []JobResponse {
	items := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, NewJobResponse(&jobs[i]))
	}
	return items
}
