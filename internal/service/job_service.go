package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/job-tracker/internal/domain"
	"github.com/spec-kit/job-tracker/internal/events"
	"github.com/spec-kit/job-tracker/internal/repository"
	apperrors "github.com/spec-kit/job-tracker/pkg/util"
)

// JobService implements owner-scoped job operations. Every method takes the
// caller's user id; jobs owned by anyone else are reported as not found.
type JobService struct {
	jobs       repository.JobRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// JobDependencies bundles collaborators for the job service.
type JobDependencies struct {
	JobRepo    repository.JobRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// JobCreateInput describes job creation payload.
type JobCreateInput struct {
	Company        string
	Position       string
	Status         domain.JobStatus
	Location       string
	Salary         string
	JobDescription string
	Notes          string
}

// NewJobService constructs the service.
func NewJobService(deps JobDependencies) *JobService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobService{jobs: deps.JobRepo, dispatcher: deps.Dispatcher, logger: logger}
}

// List returns the caller's jobs, newest first.
func (s *JobService) List(ctx context.Context, userID string) ([]domain.Job, error) {
	return s.jobs.ListByUser(ctx, userID)
}

// Create stores a new job owned by the caller.
func (s *JobService) Create(ctx context.Context, userID string, input JobCreateInput) (*domain.Job, error) {
	company := strings.TrimSpace(input.Company)
	position := strings.TrimSpace(input.Position)
	if company == "" || position == "" {
		return nil, apperrors.NewValidationError("company and position are required", nil)
	}

	if err := checkStorable(input.Company, input.Position, input.Location, input.Salary, input.JobDescription, input.Notes); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.JobStatusSaved
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	job := &domain.Job{
		UserID:         userID,
		Company:        company,
		Position:       position,
		Status:         status,
		Location:       input.Location,
		Salary:         input.Salary,
		JobDescription: input.JobDescription,
		Notes:          input.Notes,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventJobCreated, userID, job.ID, events.JobCreatedPayload{
		Company:  job.Company,
		Position: job.Position,
		Status:   job.Status,
	})
	return job, nil
}

// Update merges the supplied fields into the caller's job.
func (s *JobService) Update(ctx context.Context, userID, id string, patch domain.JobPatch) (*domain.Job, error) {
	if !isJobID(id) {
		return nil, apperrors.NewNotFound("job", nil)
	}

	var fields []string
	if patch.Company != nil {
		trimmed := strings.TrimSpace(*patch.Company)
		if trimmed == "" {
			return nil, apperrors.NewValidationError("company cannot be empty", nil)
		}
		patch.Company = &trimmed
		fields = append(fields, "company")
	}
	if patch.Position != nil {
		trimmed := strings.TrimSpace(*patch.Position)
		if trimmed == "" {
			return nil, apperrors.NewValidationError("position cannot be empty", nil)
		}
		patch.Position = &trimmed
		fields = append(fields, "position")
	}
	if patch.Status != nil {
		if err := validateStatus(*patch.Status); err != nil {
			return nil, err
		}
		fields = append(fields, "status")
	}
	if patch.Location != nil {
		fields = append(fields, "location")
	}
	if patch.Salary != nil {
		fields = append(fields, "salary")
	}
	if patch.JobDescription != nil {
		fields = append(fields, "jobDescription")
	}
	if patch.Notes != nil {
		fields = append(fields, "notes")
	}

	for _, field := range []*string{patch.Company, patch.Position, patch.Location, patch.Salary, patch.JobDescription, patch.Notes} {
		if field != nil {
			if err := checkStorable(*field); err != nil {
				return nil, err
			}
		}
	}

	job, err := s.jobs.UpdateForUser(ctx, id, userID, patch)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventJobUpdated, userID, job.ID, events.JobUpdatedPayload{Fields: fields})
	if patch.Status != nil {
		s.publish(ctx, events.EventJobStatusChanged, userID, job.ID, events.JobStatusChangedPayload{Status: job.Status})
	}
	return job, nil
}

// Delete removes one of the caller's jobs.
func (s *JobService) Delete(ctx context.Context, userID, id string) error {
	if !isJobID(id) {
		return apperrors.NewNotFound("job", nil)
	}
	if err := s.jobs.DeleteForUser(ctx, id, userID); err != nil {
		return err
	}
	s.publish(ctx, events.EventJobDeleted, userID, id, nil)
	return nil
}

// DeleteAll removes every job the caller owns. Owning none is not an error.
func (s *JobService) DeleteAll(ctx context.Context, userID string) (int64, error) {
	deleted, err := s.jobs.DeleteAllForUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.publish(ctx, events.EventJobsCleared, userID, "", events.JobsClearedPayload{Deleted: deleted})
	return deleted, nil
}

func (s *JobService) publish(ctx context.Context, eventType events.EventType, userID, jobID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		JobID:     jobID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event", string(eventType)), zap.Error(err))
	}
}

func validateStatus(status domain.JobStatus) error {
	if status.Valid() {
		return nil
	}
	allowed := make([]string, 0, len(domain.JobStatuses))
	for _, s := range domain.JobStatuses {
		allowed = append(allowed, string(s))
	}
	return apperrors.NewValidationError("invalid status", map[string]any{"allowed": allowed})
}

func checkStorable(values ...string) error {
	for _, v := range values {
		if !domain.StorableText(v) {
			return apperrors.NewValidationError("text fields must not contain NUL characters", nil)
		}
	}
	return nil
}

// Ids that cannot exist are answered like ids owned by someone else.
func isJobID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
