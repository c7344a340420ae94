package commands

import (
	"errors"
	"fmt"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/pkg/errs"
	"github.com/chiefroqa/baruk-app/internal/pkg/guard"
)

var ErrVerifyHandoffCodeCommandIsNotConstructed = errors.New(
	"VerifyHandoffCodeCommand must be created via NewVerifyHandoffCodeCommand constructor",
)

// HandoffGate identifies which of the two verification gates a code is
// submitted against.
type HandoffGate string

const (
	// GateWarehouse is the hub handoff gate, verified by the collection rider.
	GateWarehouse HandoffGate = "warehouse"
	// GateDelivery is the final handoff gate, verified by the delivery rider.
	GateDelivery HandoffGate = "delivery"
)

// Validate checks that the gate is one of the two handoff gates.
func (g HandoffGate) Validate() error {
	switch g {
	case GateWarehouse, GateDelivery:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("handoff gate",
		fmt.Errorf("%q is not a valid handoff gate", string(g)))
}

// VerifyHandoffCodeCommand represents a rider submitting a handoff
// verification code for a high-value parcel at one of the two gates.
type VerifyHandoffCodeCommand struct { //nolint:recvcheck //using for validation
	rider         Actor
	parcelID      kernel.UUID
	gate          HandoffGate
	submittedCode string

	guard guard.ConstructorGuard
}

// NewVerifyHandoffCodeCommand creates a command to verify a handoff code.
func NewVerifyHandoffCodeCommand(
	rider Actor,
	parcelID kernel.UUID,
	gate HandoffGate,
	submittedCode string,
) (VerifyHandoffCodeCommand, error) {
	cmd := VerifyHandoffCodeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(rider.Validate(), parcelID.Validate(), gate.Validate()); err != nil {
		return VerifyHandoffCodeCommand{}, err
	}
	if submittedCode == "" {
		return VerifyHandoffCodeCommand{}, errs.NewValueIsRequiredError("submitted code")
	}

	cmd.rider = rider
	cmd.parcelID = parcelID
	cmd.gate = gate
	cmd.submittedCode = submittedCode
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyHandoffCodeCommand) Validate() error {
	return c.guard.Validate(ErrVerifyHandoffCodeCommandIsNotConstructed)
}

// Rider returns the acting rider.
func (c VerifyHandoffCodeCommand) Rider() Actor {
	return c.rider
}

// ParcelID returns the target parcel's identifier.
func (c VerifyHandoffCodeCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Gate returns the handoff gate the code is submitted against.
func (c VerifyHandoffCodeCommand) Gate() HandoffGate {
	return c.gate
}

// SubmittedCode returns the code as submitted, matched exactly and
// case-sensitively against the stored one.
func (c VerifyHandoffCodeCommand) SubmittedCode() string {
	return c.submittedCode
}
