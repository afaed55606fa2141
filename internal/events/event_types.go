package events

import (
	"time"

	"github.com/spec-kit/job-tracker/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventJobCreated       EventType = "job_created"
	EventJobUpdated       EventType = "job_updated"
	EventJobStatusChanged EventType = "job_status_changed"
	EventJobDeleted       EventType = "job_deleted"
	EventJobsCleared      EventType = "jobs_cleared"
)

// Event represents a job activity emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	JobID     string      `json:"job_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// JobCreatedPayload payload.
type JobCreatedPayload struct {
	Company  string           `json:"company"`
	Position string           `json:"position"`
	Status   domain.JobStatus `json:"status"`
}

// JobUpdatedPayload lists the fields supplied by the caller.
type JobUpdatedPayload struct {
	Fields []string `json:"fields"`
}

// JobStatusChangedPayload payload.
type JobStatusChangedPayload struct {
	Status domain.JobStatus `json:"status"`
}

// JobsClearedPayload payload.
type JobsClearedPayload struct {
	Deleted int64 `json:"deleted"`
}
