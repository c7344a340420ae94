package commands

import (
	"errors"
	"fmt"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
	"github.com/chiefroqa/baruk-app/internal/pkg/errs"
	"github.com/chiefroqa/baruk-app/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
)

// CreateParcelCommand represents a customer's request to send a parcel.
// Encapsulates the route, the item description, the size class, and the
// declared value the fee engine prices.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	route, _ := parcel.NewRoute("12 Rose St", "7 Hill Rd", kernel.ZoneNorth)
//	cmd, err := NewCreateParcelCommand(parcelID, customer, route, "books", parcel.SizeSmall, 3000)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID      kernel.UUID
	customer      Actor
	route         parcel.Route
	description   string
	size          parcel.SizeClass
	declaredValue int

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// The customer actor must carry the customer role; the route and description
// must be well-formed; the declared value must be non-negative.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	customer Actor,
	route parcel.Route,
	description string,
	size parcel.SizeClass,
	declaredValue int,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCustomer(customer),
		cmd.setRoute(route),
		cmd.setDescription(description),
		cmd.setSize(size),
		cmd.setDeclaredValue(declaredValue),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier assigned to the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Customer returns the acting customer.
func (c CreateParcelCommand) Customer() Actor {
	return c.customer
}

// Route returns the pickup/delivery route.
func (c CreateParcelCommand) Route() parcel.Route {
	return c.route
}

// Description returns the free-text item description.
func (c CreateParcelCommand) Description() string {
	return c.description
}

// Size returns the declared size class.
func (c CreateParcelCommand) Size() parcel.SizeClass {
	return c.size
}

// DeclaredValue returns the declared value of the contents.
func (c CreateParcelCommand) DeclaredValue() int {
	return c.declaredValue
}

func (c *CreateParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *CreateParcelCommand) setCustomer(customer Actor) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateParcelCommand) setRoute(route parcel.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	c.route = route
	return nil
}

func (c *CreateParcelCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *CreateParcelCommand) setSize(size parcel.SizeClass) error {
	if err := size.Validate(); err != nil {
		return err
	}
	c.size = size
	return nil
}

func (c *CreateParcelCommand) setDeclaredValue(declaredValue int) error {
	if declaredValue < 0 {
		return errs.NewValueIsInvalidErrorWithCause("declared value",
			fmt.Errorf("%d is negative", declaredValue))
	}
	c.declaredValue = declaredValue
	return nil
}
