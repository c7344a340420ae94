package ports

import (
	"context"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/custody"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
)

// CustodyLogRepository defines the append-only persistence contract for the
// chain of custody. Entries are never updated or deleted.
type CustodyLogRepository interface {
	// Append persists a new custody entry.
	Append(ctx context.Context, entry *custody.Entry) error

	// ListByParcel retrieves all entries for a parcel ordered by creation
	// time, oldest first.
	ListByParcel(ctx context.Context, parcelID kernel.UUID) ([]*custody.Entry, error)
}
