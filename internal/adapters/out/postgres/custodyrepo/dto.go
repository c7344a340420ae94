// Package custodyrepo provides data transfer objects and mapping functions
// for the append-only custody ledger. There is no update or delete path in
// this package; ledger rows are written once and only ever read back.
package custodyrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/custody"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
)

// EntryDTO represents the database structure for persisting custody entries.
// parcel_id is indexed for trail reads; created_at orders the trail.
type EntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID  uuid.UUID `gorm:"type:uuid;index"`
	ActorID   uuid.UUID `gorm:"type:uuid"`
	ActorRole string
	Kind      string
	Location  string
	Note      string
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for custody entries.
func (EntryDTO) TableName() string {
	return "custody_entries"
}

// fromDomain converts a custody entry to its database representation.
func fromDomain(entry *custody.Entry) EntryDTO {
	return EntryDTO{
		ID:        entry.ID().Bytes(),
		ParcelID:  entry.ParcelID().Bytes(),
		ActorID:   entry.ActorID().Bytes(),
		ActorRole: string(entry.ActorRole()),
		Kind:      string(entry.Kind()),
		Location:  entry.Location(),
		Note:      entry.Note(),
		CreatedAt: entry.CreatedAt(),
	}
}

// toDomain converts a database DTO to a custody entry using RestoreEntry.
func toDomain(dto EntryDTO) (*custody.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	role, err := kernel.RoleFromString(dto.ActorRole)
	if err != nil {
		return nil, err
	}

	return custody.RestoreEntry(
		id,
		parcelID,
		actorID,
		role,
		custody.EventKind(dto.Kind),
		dto.Location,
		dto.Note,
		dto.CreatedAt,
	)
}
