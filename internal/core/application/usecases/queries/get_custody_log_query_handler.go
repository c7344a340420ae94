package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
)

// GetCustodyLogQueryHandler reads a parcel's custody trail from the database.
// Entries come back in insertion order, which matches creation time.
type GetCustodyLogQueryHandler struct {
	db *gorm.DB
}

// NewGetCustodyLogQueryHandler creates a handler for custody trail queries.
// Requires a GORM database connection for query execution.
func NewGetCustodyLogQueryHandler(db *gorm.DB) GetCustodyLogQueryHandler {
	return GetCustodyLogQueryHandler{db: db}
}

// Handle executes the query. An empty slice means the parcel has no trail,
// which for an existing parcel cannot happen since placement writes the
// first entry.
func (h GetCustodyLogQueryHandler) Handle(
	ctx context.Context,
	query GetCustodyLogQuery,
) ([]GetCustodyLogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetCustodyLogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			actor_id,
			actor_role,
			kind,
			location,
			note,
			created_at
		FROM custody_entries
		WHERE parcel_id = ?
		ORDER BY created_at, id
	`, query.ParcelID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCustodyLogQueryResponse
		var id, actorID uuid.UUID

		err = rows.Scan(
			&id,
			&actorID,
			&resp.ActorRole,
			&resp.Kind,
			&resp.Location,
			&resp.Note,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = entryID

		entryActorID, actorErr := kernel.UUIDFromBytes(actorID[:])
		if actorErr != nil {
			return nil, actorErr
		}
		resp.ActorID = entryActorID

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
