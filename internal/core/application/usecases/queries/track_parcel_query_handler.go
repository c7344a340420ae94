package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
	"github.com/chiefroqa/baruk-app/internal/pkg/errs"
)

// TrackParcelQueryHandler looks up a parcel by tracking code and builds
// the public tracking view. The stored handoff codes stay out of the
// projection entirely.
type TrackParcelQueryHandler struct {
	db *gorm.DB
}

// NewTrackParcelQueryHandler creates a handler for tracking lookups.
// Requires a GORM database connection for query execution.
func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error when no
// parcel carries the given tracking code.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	var resp TrackParcelQueryResponse
	var id uuid.UUID
	var status int
	var zone string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			status,
			pickup_address,
			delivery_address,
			delivery_zone,
			size_class,
			high_value,
			base_fee,
			protection_fee,
			total_fee,
			created_at,
			updated_at
		FROM parcels
		WHERE tracking_code = ?
	`, query.TrackingCode()).Row()

	err := row.Scan(
		&id,
		&resp.TrackingCode,
		&status,
		&resp.PickupAddress,
		&resp.DeliveryAddress,
		&zone,
		&resp.SizeClass,
		&resp.HighValue,
		&resp.BaseFee,
		&resp.ProtectionFee,
		&resp.TotalFee,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackParcelQueryResponse{}, errs.NewObjectNotFoundError("tracking code", query.TrackingCode())
	}
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}
	resp.ID = parcelID

	deliveryZone, err := kernel.ZoneFromString(zone)
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}
	resp.DeliveryZone = deliveryZone
	resp.Status = parcel.Status(status).String()

	return resp, nil
}
