// Package riderrepo provides data transfer objects and mapping functions for
// rider persistence.
package riderrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/rider"
)

// RiderDTO represents the database structure for persisting riders.
type RiderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	HomeZone  string `gorm:"index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for rider entities.
func (RiderDTO) TableName() string {
	return "riders"
}

// fromDomain converts a rider domain entity to its database representation.
func fromDomain(r *rider.Rider) RiderDTO {
	return RiderDTO{
		ID:        r.ID().Bytes(),
		Name:      r.Name(),
		HomeZone:  string(r.HomeZone()),
		CreatedAt: r.CreatedAt(),
	}
}

// toDomain converts a database DTO to a rider domain entity.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	zone, err := kernel.ZoneFromString(dto.HomeZone)
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(id, dto.Name, zone, dto.CreatedAt)
}
