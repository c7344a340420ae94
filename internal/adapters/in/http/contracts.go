package http

import (
	"time"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/rider"
)

// CreateParcelRequest is the request body for placing a parcel order.
type CreateParcelRequest struct {
	PickupAddress   string `json:"pickup_address"`
	DeliveryAddress string `json:"delivery_address"`
	DeliveryZone    string `json:"delivery_zone"`
	Description     string `json:"description"`
	SizeClass       string `json:"size_class"`
	DeclaredValue   int    `json:"declared_value"`
}

// DispatchParcelRequest is the request body for admin dispatch.
type DispatchParcelRequest struct {
	RiderID  string `json:"rider_id"`
	Override bool   `json:"override"`
}

// VerifyCodeRequest is the request body for submitting a handoff code.
type VerifyCodeRequest struct {
	Gate string `json:"gate"`
	Code string `json:"code"`
}

// CreateRiderRequest is the request body for registering a rider.
type CreateRiderRequest struct {
	Name     string `json:"name"`
	HomeZone string `json:"home_zone"`
}

// ParcelResponse is the full parcel view returned to authenticated callers.
// Handoff codes are only present on the creation response, where the
// customer receives them once.
type ParcelResponse struct {
	ID                string    `json:"id"`
	TrackingCode      string    `json:"tracking_code"`
	Status            string    `json:"status"`
	PickupAddress     string    `json:"pickup_address"`
	DeliveryAddress   string    `json:"delivery_address"`
	DeliveryZone      string    `json:"delivery_zone"`
	Description       string    `json:"description"`
	SizeClass         string    `json:"size_class"`
	DeclaredValue     int       `json:"declared_value"`
	BaseFee           int       `json:"base_fee"`
	ProtectionFee     int       `json:"protection_fee"`
	TotalFee          int       `json:"total_fee"`
	HighValue         bool      `json:"high_value"`
	WarehouseCode     string    `json:"warehouse_code,omitempty"`
	DeliveryCode      string    `json:"delivery_code,omitempty"`
	WarehouseVerified bool      `json:"warehouse_verified"`
	DeliveryVerified  bool      `json:"delivery_verified"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// RiderResponse is the rider view returned after registration.
type RiderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	HomeZone  string    `json:"home_zone"`
	CreatedAt time.Time `json:"created_at"`
}

// CustodyEntryResponse is one entry of a parcel's custody trail.
type CustodyEntryResponse struct {
	ID        string    `json:"id"`
	ActorID   string    `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	Kind      string    `json:"kind"`
	Location  string    `json:"location"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// toParcelResponse maps a parcel aggregate to its response view. Handoff
// codes are included only when withCodes is set.
func toParcelResponse(p *parcel.Parcel, withCodes bool) ParcelResponse {
	resp := ParcelResponse{
		ID:                p.ID().String(),
		TrackingCode:      p.TrackingCode(),
		Status:            p.Status().String(),
		PickupAddress:     p.Route().PickupAddress(),
		DeliveryAddress:   p.Route().DeliveryAddress(),
		DeliveryZone:      string(p.Route().DeliveryZone()),
		Description:       p.Description(),
		SizeClass:         string(p.Size()),
		DeclaredValue:     p.DeclaredValue(),
		BaseFee:           p.BaseFee(),
		ProtectionFee:     p.ProtectionFee(),
		TotalFee:          p.TotalFee(),
		HighValue:         p.IsHighValue(),
		WarehouseVerified: p.WarehouseVerified(),
		DeliveryVerified:  p.DeliveryVerified(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}

	if withCodes {
		resp.WarehouseCode = p.WarehouseCode()
		resp.DeliveryCode = p.DeliveryCode()
	}

	return resp
}

// toRiderResponse maps a rider entity to its response view.
func toRiderResponse(r *rider.Rider) RiderResponse {
	return RiderResponse{
		ID:        r.ID().String(),
		Name:      r.Name(),
		HomeZone:  string(r.HomeZone()),
		CreatedAt: r.CreatedAt(),
	}
}
