package custody

import (
	"errors"
	"time"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/pkg/guard"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not created
// through the NewEntry or RestoreEntry constructors.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")

// Entry is one immutable custody record: which actor did what to which
// parcel, where, and when. Entries have no mutating methods; once appended
// to the ledger they are never edited or removed.
type Entry struct {
	id        kernel.UUID
	parcelID  kernel.UUID
	actorID   kernel.UUID
	actorRole kernel.Role
	kind      EventKind
	location  string
	note      string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewEntry creates a custody entry stamped with the current time.
// The location is free text describing where the event was observed;
// note is optional free text and may be empty.
func NewEntry(
	id kernel.UUID,
	parcelID kernel.UUID,
	actorID kernel.UUID,
	actorRole kernel.Role,
	kind EventKind,
	location string,
	note string,
) (*Entry, error) {
	if err := errors.Join(
		id.Validate(),
		parcelID.Validate(),
		actorID.Validate(),
		actorRole.Validate(),
		kind.Validate(),
	); err != nil {
		return nil, err
	}

	return &Entry{
		id:        id,
		parcelID:  parcelID,
		actorID:   actorID,
		actorRole: actorRole,
		kind:      kind,
		location:  location,
		note:      note,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreEntry reconstructs a custody entry from persistent storage,
// preserving its original creation time.
func RestoreEntry(
	id kernel.UUID,
	parcelID kernel.UUID,
	actorID kernel.UUID,
	actorRole kernel.Role,
	kind EventKind,
	location string,
	note string,
	createdAt time.Time,
) (*Entry, error) {
	entry, err := NewEntry(id, parcelID, actorID, actorRole, kind, location, note)
	if err != nil {
		return nil, err
	}

	entry.createdAt = createdAt
	return entry, nil
}

// Validate ensures the Entry was created through a constructor.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// ParcelID returns the identifier of the parcel this entry belongs to.
func (e *Entry) ParcelID() kernel.UUID {
	return e.parcelID
}

// ActorID returns the identifier of the acting party.
func (e *Entry) ActorID() kernel.UUID {
	return e.actorID
}

// ActorRole returns the role of the acting party at the time of the event.
func (e *Entry) ActorRole() kernel.Role {
	return e.actorRole
}

// Kind returns the custody event kind.
func (e *Entry) Kind() EventKind {
	return e.kind
}

// Location returns the free-text location where the event was observed.
func (e *Entry) Location() string {
	return e.location
}

// Note returns the optional free-text note, or "" when absent.
func (e *Entry) Note() string {
	return e.note
}

// CreatedAt returns the immutable creation time of the entry.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}
