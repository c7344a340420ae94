package jobs

import (
	"fmt"
	"log/slog"

	"github.com/chiefroqa/baruk-app/internal/core/application/usecases/queries"
	"github.com/chiefroqa/baruk-app/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	parcelRebroadcastJob *ParcelRebroadcastJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	getUnassignedParcelsHandler queries.GetUnassignedParcelsQueryHandler,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		parcelRebroadcastJob: NewParcelRebroadcastJob(getUnassignedParcelsHandler, publisher, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.parcelRebroadcastJob.Start(); err != nil {
		return fmt.Errorf("failed to start parcel rebroadcast job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.parcelRebroadcastJob.Stop()
}
