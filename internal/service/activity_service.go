package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/job-tracker/internal/events"
)

// ActivityService writes an audit trail of job activity to the log.
type ActivityService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewActivityService creates the service.
func NewActivityService(dispatcher events.Dispatcher, logger *zap.Logger) *ActivityService {
	return &ActivityService{
		dispatcher: dispatcher,
		logger:     logger.Named("activity"),
	}
}

// RegisterHandlers subscribes to events.
func (a *ActivityService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventJobCreated, a.handleJobCreated)
	a.dispatcher.Subscribe(events.EventJobUpdated, a.record)
	a.dispatcher.Subscribe(events.EventJobStatusChanged, a.handleStatusChanged)
	a.dispatcher.Subscribe(events.EventJobDeleted, a.record)
	a.dispatcher.Subscribe(events.EventJobsCleared, a.record)
}

func (a *ActivityService) handleJobCreated(_ context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.JobCreatedPayload)
	a.logger.Info(string(event.Type),
		zap.String("event_id", event.ID),
		zap.String("user_id", event.UserID),
		zap.String("job_id", event.JobID),
		zap.String("company", payload.Company),
		zap.String("position", payload.Position),
		zap.String("status", string(payload.Status)),
	)
	return nil
}

func (a *ActivityService) handleStatusChanged(_ context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.JobStatusChangedPayload)
	a.logger.Info(string(event.Type),
		zap.String("event_id", event.ID),
		zap.String("user_id", event.UserID),
		zap.String("job_id", event.JobID),
		zap.String("status", string(payload.Status)),
	)
	return nil
}

func (a *ActivityService) record(_ context.Context, event events.Event) error {
	a.logger.Info(string(event.Type),
		zap.String("event_id", event.ID),
		zap.String("user_id", event.UserID),
		zap.String("job_id", event.JobID),
		zap.Any("payload", event.Payload),
	)
	return nil
}
