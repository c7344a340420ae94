package rider

import (
	"errors"
	"time"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/pkg/errs"
	"github.com/chiefroqa/baruk-app/internal/pkg/guard"
)

// ErrRiderIsNotConstructed is returned when a Rider instance was not created
// through the NewRider or RestoreRider constructors.
var ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider constructor")

// Rider represents a courier registered with the service. Riders are
// near-immutable reference data: the state machine consults a rider's home
// zone when binding delivery riders, and binds rider IDs into parcels.
type Rider struct {
	id        kernel.UUID
	name      string
	homeZone  kernel.Zone
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewRider creates a rider with the given name and home zone.
func NewRider(id kernel.UUID, name string, homeZone kernel.Zone) (*Rider, error) {
	r := &Rider{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setHomeZone(homeZone),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRider reconstructs a rider from persistent storage.
func RestoreRider(id kernel.UUID, name string, homeZone kernel.Zone, createdAt time.Time) (*Rider, error) {
	r, err := NewRider(id, name, homeZone)
	if err != nil {
		return nil, err
	}

	r.createdAt = createdAt
	return r, nil
}

// Validate ensures the Rider was created through a constructor.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// IsEqual compares two riders by their unique identifiers.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Name returns the rider's display name.
func (r *Rider) Name() string {
	return r.name
}

// HomeZone returns the catchment the rider serves.
func (r *Rider) HomeZone() kernel.Zone {
	return r.homeZone
}

// CreatedAt returns the registration time.
func (r *Rider) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("rider name")
	}
	r.name = name
	return nil
}

func (r *Rider) setHomeZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	r.homeZone = zone
	return nil
}
