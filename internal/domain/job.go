package domain

import "time"

// JobStatus labels where an application stands. Any status may move to any other.
type JobStatus string

const (
	JobStatusSaved     JobStatus = "saved"
	JobStatusApplied   JobStatus = "applied"
	JobStatusInterview JobStatus = "interview"
	JobStatusOffer     JobStatus = "offer"
	JobStatusRejected  JobStatus = "rejected"
)

// JobStatuses lists every accepted status.
var JobStatuses = []JobStatus{
	JobStatusSaved,
	JobStatusApplied,
	JobStatusInterview,
	JobStatusOffer,
	JobStatusRejected,
}

// Valid reports whether s is one of the known statuses.
func (s JobStatus) Valid() bool {
	for _, known := range JobStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Job is a tracked job application owned by exactly one user.
type Job struct {
	ID             string
	UserID         string
	Company        string
	Position       string
	Status         JobStatus
	Location       string
	Salary         string
	JobDescription string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// JobPatch carries the fields of a partial update; nil fields stay untouched.
type JobPatch struct {
	Company        *string
	Position       *string
	Status         *JobStatus
	Location       *string
	Salary         *string
	JobDescription *string
	Notes          *string
}
