// Package ports defines repository and outbound interfaces for the parcel
// custody domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate. The tracking code carries a
	// unique index; a generator collision surfaces here as a storage error.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel with a compare-and-swap
	// on the aggregate version. When a concurrent writer got there first,
	// Update returns a TransitionRejectedError wrapping parcel.ErrConflictLost
	// and nothing is written.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingCode retrieves a parcel by its human-facing tracking code.
	GetByTrackingCode(ctx context.Context, trackingCode string) (*parcel.Parcel, error)
}
