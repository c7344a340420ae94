// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. It implements the repository pattern for the parcel
// aggregate, converting between domain entities and database rows.
package parcelrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The tracking code carries a unique index; status is indexed
// for the unassigned-parcel and rebroadcast queries. Version is the
// optimistic concurrency token compare-and-swapped on every update.
type ParcelDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingCode string    `gorm:"uniqueIndex"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index"`

	CollectionRiderID *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryRiderID   *uuid.UUID `gorm:"type:uuid;index"`

	Route       RouteDTO `gorm:"embedded"`
	Description string
	SizeClass   string

	DeclaredValue int
	BaseFee       int
	ProtectionFee int
	TotalFee      int
	HighValue     bool

	WarehouseCode     string
	DeliveryCode      string
	WarehouseVerified bool
	DeliveryVerified  bool

	Status    int `gorm:"index"`
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// RouteDTO represents the embedded route columns within the parcel table.
type RouteDTO struct {
	PickupAddress   string
	DeliveryAddress string
	DeliveryZone    string
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var collectionRiderID, deliveryRiderID *uuid.UUID
	if id := aggregate.CollectionRider(); id != nil {
		raw := id.Bytes()
		collectionRiderID = &raw
	}
	if id := aggregate.DeliveryRider(); id != nil {
		raw := id.Bytes()
		deliveryRiderID = &raw
	}

	return ParcelDTO{
		ID:                aggregate.ID().Bytes(),
		TrackingCode:      aggregate.TrackingCode(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		CollectionRiderID: collectionRiderID,
		DeliveryRiderID:   deliveryRiderID,
		Route: RouteDTO{
			PickupAddress:   aggregate.Route().PickupAddress(),
			DeliveryAddress: aggregate.Route().DeliveryAddress(),
			DeliveryZone:    string(aggregate.Route().DeliveryZone()),
		},
		Description:       aggregate.Description(),
		SizeClass:         string(aggregate.Size()),
		DeclaredValue:     aggregate.DeclaredValue(),
		BaseFee:           aggregate.BaseFee(),
		ProtectionFee:     aggregate.ProtectionFee(),
		TotalFee:          aggregate.TotalFee(),
		HighValue:         aggregate.IsHighValue(),
		WarehouseCode:     aggregate.WarehouseCode(),
		DeliveryCode:      aggregate.DeliveryCode(),
		WarehouseVerified: aggregate.WarehouseVerified(),
		DeliveryVerified:  aggregate.DeliveryVerified(),
		Status:            int(aggregate.Status()),
		Version:           aggregate.Version(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate using
// RestoreParcel, preserving status, bindings, verification state, and version.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var collectionRiderID, deliveryRiderID *kernel.UUID
	if dto.CollectionRiderID != nil {
		riderID, riderErr := kernel.UUIDFromBytes((*dto.CollectionRiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		collectionRiderID = &riderID
	}
	if dto.DeliveryRiderID != nil {
		riderID, riderErr := kernel.UUIDFromBytes((*dto.DeliveryRiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		deliveryRiderID = &riderID
	}

	zone, err := kernel.ZoneFromString(dto.Route.DeliveryZone)
	if err != nil {
		return nil, err
	}

	route, err := parcel.NewRoute(dto.Route.PickupAddress, dto.Route.DeliveryAddress, zone)
	if err != nil {
		return nil, err
	}

	size, err := parcel.SizeClassFromString(dto.SizeClass)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		dto.TrackingCode,
		customerID,
		collectionRiderID,
		deliveryRiderID,
		route,
		dto.Description,
		size,
		dto.DeclaredValue,
		dto.BaseFee,
		dto.ProtectionFee,
		dto.HighValue,
		dto.WarehouseCode,
		dto.DeliveryCode,
		dto.WarehouseVerified,
		dto.DeliveryVerified,
		parcel.Status(dto.Status),
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
