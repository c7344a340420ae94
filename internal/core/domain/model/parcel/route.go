package parcel

import (
	"errors"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/pkg/errs"
	"github.com/chiefroqa/baruk-app/internal/pkg/guard"
)

// ErrRouteIsNotConstructed is returned when a Route was not created through
// the NewRoute constructor.
var ErrRouteIsNotConstructed = errs.NewValueIsRequiredError("route must be created via NewRoute constructor")

// Route is an immutable value object describing where a parcel travels:
// the pickup address, the delivery address, and the delivery zone used for
// rider matching.
type Route struct { //nolint:recvcheck //using for validation
	pickupAddress   string
	deliveryAddress string
	deliveryZone    kernel.Zone

	guard guard.ConstructorGuard
}

// NewRoute creates a validated Route. Both addresses are required free text;
// the delivery zone must be one of the enumerated catchments.
func NewRoute(pickupAddress, deliveryAddress string, deliveryZone kernel.Zone) (Route, error) {
	route := Route{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		route.setPickupAddress(pickupAddress),
		route.setDeliveryAddress(deliveryAddress),
		route.setDeliveryZone(deliveryZone),
	); err != nil {
		return Route{}, err
	}

	return route, nil
}

// Validate ensures the Route was created through the constructor.
func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// PickupAddress returns the address where the parcel is collected.
func (r Route) PickupAddress() string {
	return r.pickupAddress
}

// DeliveryAddress returns the final destination address.
func (r Route) DeliveryAddress() string {
	return r.deliveryAddress
}

// DeliveryZone returns the catchment the destination falls into.
func (r Route) DeliveryZone() kernel.Zone {
	return r.deliveryZone
}

func (r *Route) setPickupAddress(addr string) error {
	if addr == "" {
		return errs.NewValueIsRequiredError("pickup address")
	}
	r.pickupAddress = addr
	return nil
}

func (r *Route) setDeliveryAddress(addr string) error {
	if addr == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	r.deliveryAddress = addr
	return nil
}

func (r *Route) setDeliveryZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	r.deliveryZone = zone
	return nil
}
