package account

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Role is the closed set of conceptual roles an account can act under.
// Exactly one role applies per request; resolution precedence lives in
// Account.Role().
type Role int

const (
	// RoleUnknown catches uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer applies to accounts belonging to no group.
	// Customers own carts and the orders created from them.
	RoleCustomer

	// RoleManager applies to staff accounts and members of the manager
	// group. Managers administer the menu, the group directory, and orders.
	RoleManager

	// RoleDeliveryCrew applies to members of the delivery crew group.
	// Crew members may only flip the status of orders assigned to them.
	RoleDeliveryCrew
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:      "unknown",
		RoleCustomer:     "customer",
		RoleManager:      "manager",
		RoleDeliveryCrew: "delivery_crew",
	}
}

// Validate rejects RoleUnknown and any out-of-range value.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleManager, RoleDeliveryCrew:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
}

// String implements fmt.Stringer with the wire-level role names.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// GroupName identifies one of the directory groups role resolution reads.
type GroupName string

const (
	GroupManager      GroupName = "manager"
	GroupDeliveryCrew GroupName = "delivery_crew"
)

// GroupFromString validates and converts an externally supplied group name.
func GroupFromString(name string) (GroupName, error) {
	switch GroupName(name) {
	case GroupManager, GroupDeliveryCrew:
		return GroupName(name), nil
	default:
		return "", errs.NewObjectNotFoundError("group", name)
	}
}
