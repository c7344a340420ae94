package queries

import (
	"errors"
	"time"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/pkg/guard"
)

var (
	ErrGetCustodyLogQueryIsNotConstructed = errors.New(
		"GetCustodyLogQuery must be created via NewGetCustodyLogQuery constructor",
	)
)

// GetCustodyLogQuery retrieves the full custody trail of a parcel, oldest
// entry first. The trail answers who held the parcel, where, and when.
type GetCustodyLogQuery struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustodyLogQuery creates a query to retrieve a parcel's custody trail.
func NewGetCustodyLogQuery(parcelID kernel.UUID) (GetCustodyLogQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetCustodyLogQuery{}, err
	}

	return GetCustodyLogQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustodyLogQuery) Validate() error {
	return q.guard.Validate(ErrGetCustodyLogQueryIsNotConstructed)
}

// ParcelID returns the parcel whose trail is requested.
func (q GetCustodyLogQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// GetCustodyLogQueryResponse represents one custody trail entry.
type GetCustodyLogQueryResponse struct {
	ID        kernel.UUID
	ActorID   kernel.UUID
	ActorRole string
	Kind      string
	Location  string
	Note      string
	CreatedAt time.Time
}
