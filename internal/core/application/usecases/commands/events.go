package commands

import (
	"context"
	"time"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/custody"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
	"github.com/chiefroqa/baruk-app/internal/core/ports"
)

// notify emits a change notification after a committed transition.
// Publishing is best-effort: listeners refresh derived views from it, the
// system of record is the store, so a publish failure is swallowed.
func notify(ctx context.Context, publisher ports.EventPublisher, p *parcel.Parcel, kind custody.EventKind) {
	if publisher == nil {
		return
	}

	_ = publisher.Publish(ctx, ports.ParcelEvent{
		ParcelID:     p.ID(),
		TrackingCode: p.TrackingCode(),
		Status:       p.Status(),
		Kind:         kind,
		OccurredAt:   time.Now().UTC(),
	})
}
