package custody

import (
	"fmt"

	"github.com/chiefroqa/baruk-app/internal/pkg/errs"
)

// EventKind enumerates the observable custody events for a parcel.
type EventKind string

const (
	// EventOrderPlaced records creation of the parcel by the customer.
	EventOrderPlaced EventKind = "ORDER_PLACED"
	// EventCollectedFromCustomer records a rider taking custody at pickup.
	EventCollectedFromCustomer EventKind = "COLLECTED_FROM_CUSTOMER"
	// EventArrivedAtWarehouse records handoff of the parcel to the hub.
	EventArrivedAtWarehouse EventKind = "ARRIVED_AT_WAREHOUSE"
	// EventDispatchedToRider records the admin binding a delivery rider.
	EventDispatchedToRider EventKind = "DISPATCHED_TO_RIDER"
	// EventAcceptedDeliveryJob records a rider self-assigning a delivery.
	EventAcceptedDeliveryJob EventKind = "ACCEPTED_DELIVERY_JOB"
	// EventOutForDelivery records the parcel leaving the hub.
	EventOutForDelivery EventKind = "OUT_FOR_DELIVERY"
	// EventOTPWarehouseVerified records a successful warehouse handoff code match.
	EventOTPWarehouseVerified EventKind = "OTP_WAREHOUSE_VERIFIED"
	// EventOTPDeliveryVerified records a successful delivery handoff code match.
	EventOTPDeliveryVerified EventKind = "OTP_DELIVERY_VERIFIED"
	// EventDelivered records final handoff to the recipient.
	EventDelivered EventKind = "DELIVERED"
)

// Validate checks that the kind is one of the enumerated custody events.
func (k EventKind) Validate() error {
	switch k {
	case EventOrderPlaced, EventCollectedFromCustomer, EventArrivedAtWarehouse,
		EventDispatchedToRider, EventAcceptedDeliveryJob, EventOutForDelivery,
		EventOTPWarehouseVerified, EventOTPDeliveryVerified, EventDelivered:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("event kind",
		fmt.Errorf("%q is not a valid custody event kind", string(k)))
}

// String implements fmt.Stringer.
func (k EventKind) String() string {
	return string(k)
}
