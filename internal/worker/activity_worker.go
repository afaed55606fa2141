package worker

import (
	"github.com/spec-kit/job-tracker/internal/service"
)

// StartActivityWorker registers activity handlers. Handlers run inline with
// the publishing request; nothing is queued.
func StartActivityWorker(activityService *service.ActivityService) {
	if activityService == nil {
		return
	}
	activityService.RegisterHandlers()
}
