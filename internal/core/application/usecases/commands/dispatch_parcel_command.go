package commands

import (
	"errors"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/pkg/guard"
)

var ErrDispatchParcelCommandIsNotConstructed = errors.New(
	"DispatchParcelCommand must be created via NewDispatchParcelCommand constructor",
)

// DispatchParcelCommand represents an admin dispatching a parcel from the
// warehouse: binding a delivery rider and sending the parcel out for
// delivery in one call. Override skips the zone match check.
type DispatchParcelCommand struct { //nolint:recvcheck //using for validation
	admin    Actor
	parcelID kernel.UUID
	riderID  kernel.UUID
	override bool

	guard guard.ConstructorGuard
}

// NewDispatchParcelCommand creates a command for an admin to dispatch a
// parcel to a delivery rider.
func NewDispatchParcelCommand(admin Actor, parcelID, riderID kernel.UUID, override bool) (DispatchParcelCommand, error) {
	cmd := DispatchParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(admin.Validate(), parcelID.Validate(), riderID.Validate()); err != nil {
		return DispatchParcelCommand{}, err
	}

	cmd.admin = admin
	cmd.parcelID = parcelID
	cmd.riderID = riderID
	cmd.override = override
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchParcelCommand) Validate() error {
	return c.guard.Validate(ErrDispatchParcelCommandIsNotConstructed)
}

// Admin returns the acting admin.
func (c DispatchParcelCommand) Admin() Actor {
	return c.admin
}

// ParcelID returns the target parcel's identifier.
func (c DispatchParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// RiderID returns the delivery rider being assigned.
func (c DispatchParcelCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Override reports whether the admin waives the zone match check.
func (c DispatchParcelCommand) Override() bool {
	return c.override
}
