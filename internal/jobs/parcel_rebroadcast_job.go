package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/chiefroqa/baruk-app/internal/core/application/usecases/queries"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/custody"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
	"github.com/chiefroqa/baruk-app/internal/core/ports"
)

// ParcelRebroadcastJob periodically republishes parcels that are still
// searching for a collection rider. Publication is best-effort; a failed
// publish is logged and retried on the next tick.
type ParcelRebroadcastJob struct {
	query     queries.GetUnassignedParcelsQueryHandler
	publisher ports.EventPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewParcelRebroadcastJob creates a job that rebroadcasts open pickup jobs
// every thirty seconds.
func NewParcelRebroadcastJob(
	query queries.GetUnassignedParcelsQueryHandler,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *ParcelRebroadcastJob {
	return &ParcelRebroadcastJob{
		query:     query,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "parcel_rebroadcast_job"),
	}
}

// Start begins the rebroadcast job.
func (j *ParcelRebroadcastJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		parcels, err := j.query.Handle(ctx, queries.NewGetUnassignedParcelsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Parcel rebroadcast job failed to load parcels", "error", err)
			return
		}

		for _, p := range parcels {
			event := ports.ParcelEvent{
				ParcelID:     p.ID,
				TrackingCode: p.TrackingCode,
				Status:       parcel.SearchingRider,
				Kind:         custody.EventOrderPlaced,
				OccurredAt:   time.Now().UTC(),
			}

			if err := j.publisher.Publish(ctx, event); err != nil {
				j.logger.WarnContext(ctx, "Parcel rebroadcast publish failed",
					"tracking_code", p.TrackingCode, "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Parcel rebroadcast job started (running every 30 seconds)")
	return nil
}

// Stop stops the rebroadcast job.
func (j *ParcelRebroadcastJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Parcel rebroadcast job stopped")
}
