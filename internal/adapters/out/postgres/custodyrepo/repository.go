package custodyrepo

import (
	"context"

	"gorm.io/gorm"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/custody"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
)

// GormCustodyLogRepository implements CustodyLogRepository using GORM.
type GormCustodyLogRepository struct {
	db *gorm.DB
}

// NewGormCustodyLogRepository creates a new GORM custody log repository.
func NewGormCustodyLogRepository(db *gorm.DB) *GormCustodyLogRepository {
	return &GormCustodyLogRepository{db: db}
}

// Append writes a custody entry. Entries are insert-only.
func (r *GormCustodyLogRepository) Append(ctx context.Context, entry *custody.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByParcel retrieves a parcel's custody trail, oldest entry first.
func (r *GormCustodyLogRepository) ListByParcel(ctx context.Context, parcelID kernel.UUID) ([]*custody.Entry, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&dtos, "parcel_id = ?", parcelID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*custody.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := toDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
