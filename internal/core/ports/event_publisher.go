package ports

import (
	"context"
	"time"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/custody"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
)

// ParcelEvent is the change notification emitted after a successful
// transition so external listeners can refresh derived views.
type ParcelEvent struct {
	ParcelID     kernel.UUID
	TrackingCode string
	Status       parcel.Status
	Kind         custody.EventKind
	OccurredAt   time.Time
}

// EventPublisher delivers parcel change notifications to interested
// listeners. Publishing is best-effort and happens after the transition has
// committed; a publish failure never rolls back a transition.
type EventPublisher interface {
	Publish(ctx context.Context, event ParcelEvent) error
}
