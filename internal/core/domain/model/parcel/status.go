package parcel

import "fmt"

// Status represents the custody state of a parcel. It implements a state
// machine with defined transitions so parcels follow the physical handoff
// workflow.
//
// State transitions:
//
//	SearchingRider ──> PickedUp ──> AtWarehouse ──> OutForDelivery ──> Delivered
//	       │               │             │                 │
//	       └───────────────┴──────┬──────┴─────────────────┘
//	                              v
//	                          Cancelled
//
// SearchingRider may also move directly to AtWarehouse when the bound
// collection rider reports the hub arrival before the pickup was recorded.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// SearchingRider is the initial status: the parcel awaits a collection rider.
	SearchingRider

	// PickedUp indicates a collection rider has taken custody from the customer.
	PickedUp

	// AtWarehouse indicates the parcel has been handed off to the hub.
	AtWarehouse

	// OutForDelivery indicates a delivery rider has left the hub with the parcel.
	OutForDelivery

	// Delivered is the successful terminal status.
	Delivered

	// Cancelled is the alternate terminal status, reachable from any
	// non-terminal status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		SearchingRider: "searching_rider",
		PickedUp:       "picked_up",
		AtWarehouse:    "at_warehouse",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// Validate checks that the Status value is one of the defined custody states.
func (s Status) Validate() error {
	if s == Unknown {
		return NewTransitionRejectedError(ErrWrongStatus, "status is unknown")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return NewTransitionRejectedError(ErrWrongStatus,
			fmt.Sprintf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the wire name of the status, e.g. "at_warehouse".
// Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// PickUp transitions SearchingRider -> PickedUp.
func (s Status) PickUp() (Status, error) {
	if s != SearchingRider {
		return Unknown, rejectStatus(s, "pick up", SearchingRider)
	}
	return PickedUp, nil
}

// ArriveAtWarehouse transitions PickedUp -> AtWarehouse. SearchingRider is
// also accepted as a source: the bound collection rider may report the hub
// arrival before the pickup was recorded.
func (s Status) ArriveAtWarehouse() (Status, error) {
	if s != PickedUp && s != SearchingRider {
		return Unknown, rejectStatus(s, "arrive at warehouse", PickedUp)
	}
	return AtWarehouse, nil
}

// StartDelivery transitions AtWarehouse -> OutForDelivery.
func (s Status) StartDelivery() (Status, error) {
	if s != AtWarehouse {
		return Unknown, rejectStatus(s, "start delivery", AtWarehouse)
	}
	return OutForDelivery, nil
}

// Deliver transitions OutForDelivery -> Delivered.
func (s Status) Deliver() (Status, error) {
	if s != OutForDelivery {
		return Unknown, rejectStatus(s, "deliver", OutForDelivery)
	}
	return Delivered, nil
}

// Cancel transitions any non-terminal status -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return Unknown, NewTransitionRejectedError(ErrWrongStatus,
			fmt.Sprintf("cannot cancel a parcel in terminal status %s", s))
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Cancelled, nil
}

func rejectStatus(current Status, action string, expected Status) error {
	return NewTransitionRejectedError(ErrWrongStatus,
		fmt.Sprintf("cannot %s a parcel in status %s, expected %s", action, current, expected))
}
