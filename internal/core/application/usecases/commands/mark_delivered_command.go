package commands

import (
	"errors"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents the delivery rider confirming handover
// of the parcel to the customer.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	rider    Actor
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to mark a parcel delivered.
func NewMarkDeliveredCommand(rider Actor, parcelID kernel.UUID) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(rider.Validate(), parcelID.Validate()); err != nil {
		return MarkDeliveredCommand{}, err
	}

	cmd.rider = rider
	cmd.parcelID = parcelID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// Rider returns the acting rider.
func (c MarkDeliveredCommand) Rider() Actor {
	return c.rider
}

// ParcelID returns the target parcel's identifier.
func (c MarkDeliveredCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
