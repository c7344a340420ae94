package queries

import (
	"errors"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/pkg/guard"
)

var (
	ErrGetUnassignedParcelsQueryIsNotConstructed = errors.New(
		"GetUnassignedParcelsQuery must be created via NewGetUnassignedParcelsQuery constructor",
	)
)

// GetUnassignedParcelsQuery retrieves all parcels still searching for a
// collection rider. Riders poll this to find available pickup jobs.
//
// Example:
//
//	query := NewGetUnassignedParcelsQuery()
//	handler := NewGetUnassignedParcelsQueryHandler(db)
//
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get unassigned parcels: %w", err)
//	}
//
//	fmt.Printf("Found %d parcels awaiting pickup\n", len(parcels))
type GetUnassignedParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedParcelsQuery creates a query to retrieve unassigned parcels.
// This is a parameterless query that fetches every parcel in searching status.
func NewGetUnassignedParcelsQuery() GetUnassignedParcelsQuery {
	return GetUnassignedParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedParcelsQueryIsNotConstructed)
}

// GetUnassignedParcelsQueryResponse represents a pickup job available to riders.
type GetUnassignedParcelsQueryResponse struct {
	ID            kernel.UUID
	TrackingCode  string
	PickupAddress string
	DeliveryZone  kernel.Zone
	SizeClass     string
	HighValue     bool
}
