package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
)

// GetUnassignedParcelsQueryHandler retrieves unassigned parcels from the
// database. Uses direct SQL for read performance in the CQRS pattern.
type GetUnassignedParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedParcelsQueryHandler creates a handler for pickup job queries.
// Requires a GORM database connection for query execution.
func NewGetUnassignedParcelsQueryHandler(db *gorm.DB) GetUnassignedParcelsQueryHandler {
	return GetUnassignedParcelsQueryHandler{db: db}
}

// Handle executes the query to retrieve all parcels awaiting a collection
// rider. Results are sorted by creation time so the oldest jobs surface first.
func (h GetUnassignedParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedParcelsQuery,
) ([]GetUnassignedParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetUnassignedParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			pickup_address,
			delivery_zone,
			size_class,
			high_value
		FROM parcels
		WHERE status = ?
		ORDER BY created_at
	`, parcel.SearchingRider).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnassignedParcelsQueryResponse
		var id uuid.UUID
		var zone string

		err = rows.Scan(
			&id,
			&resp.TrackingCode,
			&resp.PickupAddress,
			&zone,
			&resp.SizeClass,
			&resp.HighValue,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = parcelID

		deliveryZone, zoneErr := kernel.ZoneFromString(zone)
		if zoneErr != nil {
			return nil, zoneErr
		}
		resp.DeliveryZone = deliveryZone
		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
