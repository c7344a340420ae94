package commands

import (
	"errors"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/pkg/guard"
)

var ErrMarkAtWarehouseCommandIsNotConstructed = errors.New(
	"MarkAtWarehouseCommand must be created via NewMarkAtWarehouseCommand constructor",
)

// MarkAtWarehouseCommand represents the bound collection rider reporting the
// hub handoff of a parcel.
type MarkAtWarehouseCommand struct { //nolint:recvcheck //using for validation
	rider    Actor
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkAtWarehouseCommand creates a command to record a warehouse arrival.
func NewMarkAtWarehouseCommand(rider Actor, parcelID kernel.UUID) (MarkAtWarehouseCommand, error) {
	cmd := MarkAtWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(rider.Validate(), parcelID.Validate()); err != nil {
		return MarkAtWarehouseCommand{}, err
	}

	cmd.rider = rider
	cmd.parcelID = parcelID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAtWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrMarkAtWarehouseCommandIsNotConstructed)
}

// Rider returns the acting rider.
func (c MarkAtWarehouseCommand) Rider() Actor {
	return c.rider
}

// ParcelID returns the target parcel's identifier.
func (c MarkAtWarehouseCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
