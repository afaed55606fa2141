package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/job-tracker/internal/events"
	"github.com/spec-kit/job-tracker/internal/service"
)

func TestStartActivityWorkerSubscribes(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()

	StartActivityWorker(service.NewActivityService(dispatcher, zap.New(core)))

	err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventJobsCleared, UserID: "u-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage(string(events.EventJobsCleared)).Len())
}

func TestStartActivityWorkerNil(t *testing.T) {
	StartActivityWorker(nil)
}
