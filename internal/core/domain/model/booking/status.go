package booking

import (
	"fmt"

	"cargo/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// The status of a booking is not stored independently: it is defined as the
// status of the booking's most recent tracking event. Staff may move a
// shipment between any non-terminal states (corrections included); only
// delivered and cancelled end the workflow.
//
//	Pending ──> PickedUp ──> InTransit ──> OutForDelivery ──> Delivered
//	    └────────────┴────────────┴──────────────┴──────> Cancelled
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status set by the creation event.
	StatusPending

	// StatusPickedUp means the cargo has been collected from the sender.
	StatusPickedUp

	// StatusInTransit means the cargo is moving between facilities.
	StatusInTransit

	// StatusOutForDelivery means the cargo is on its final leg.
	StatusOutForDelivery

	// StatusDelivered is a terminal state: the cargo reached the recipient.
	StatusDelivered

	// StatusCancelled is a terminal state: the shipment was abandoned.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusPending:        "pending",
		StatusPickedUp:       "picked_up",
		StatusInTransit:      "in_transit",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "pending",
		StatusPickedUp:       "picked_up",
		StatusInTransit:      "in_transit",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

// StatusFromString parses the lowercase status name used on the wire and in
// storage.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate checks that the Status is one of the six shipment states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// String returns the lowercase status name. Safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status ends the shipment workflow.
// No regular tracking event may follow a terminal status.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}
