package queries

import (
	"errors"
	"time"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/pkg/errs"
	"github.com/chiefroqa/baruk-app/internal/pkg/guard"
)

var (
	ErrTrackParcelQueryIsNotConstructed = errors.New(
		"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
	)
)

// TrackParcelQuery retrieves the public tracking view of a parcel by its
// tracking code. Handoff codes are never exposed through this view.
//
// Example:
//
//	query, err := NewTrackParcelQuery("BRK-7KQ2MN4P")
//	if err != nil {
//	    return err
//	}
//	handler := NewTrackParcelQueryHandler(db)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to track parcel: %w", err)
//	}
//
//	fmt.Printf("Parcel %s is %s\n", view.TrackingCode, view.Status)
type TrackParcelQuery struct { //nolint:recvcheck //using for validation
	trackingCode string

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a query to track a parcel by tracking code.
func NewTrackParcelQuery(trackingCode string) (TrackParcelQuery, error) {
	if trackingCode == "" {
		return TrackParcelQuery{}, errs.NewValueIsRequiredError("tracking code")
	}

	return TrackParcelQuery{
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackingCode returns the tracking code being looked up.
func (q TrackParcelQuery) TrackingCode() string {
	return q.trackingCode
}

// TrackParcelQueryResponse is the public tracking view of a parcel.
type TrackParcelQueryResponse struct {
	ID              kernel.UUID
	TrackingCode    string
	Status          string
	PickupAddress   string
	DeliveryAddress string
	DeliveryZone    kernel.Zone
	SizeClass       string
	HighValue       bool
	BaseFee         int
	ProtectionFee   int
	TotalFee        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
