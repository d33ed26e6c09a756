package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Pending <──> Delivery
//
// An order starts Pending at checkout. Moving it to Delivery (and back, a
// manager correction) is an explicit role-gated write; there are no
// automatic transitions.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status set at checkout: the order is
	// waiting to go out for delivery.
	StatusPending

	// StatusDelivery means the order is out for delivery.
	StatusDelivery
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusPending:  "pending",
		StatusDelivery: "delivery",
	}
}

// StatusFromString parses the wire-level status names used in order patches.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
}

// String implements fmt.Stringer with the wire-level status names.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// TransitionTo checks whether the target status is reachable from s.
// Both directions between pending and delivery are legal (the reverse is a
// manager correction); setting the current status again is a no-op patch
// and also legal. Anything involving an invalid state is not.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	return target, nil
}
