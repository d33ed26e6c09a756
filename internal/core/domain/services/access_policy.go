package services

import (
	"fmt"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// OrderScope describes which orders an actor may see when listing.
type OrderScope int

const (
	// ScopeOwn limits listing to orders owned by the actor (customers).
	ScopeOwn OrderScope = iota

	// ScopeAssigned limits listing to orders assigned to the actor
	// (delivery crew).
	ScopeAssigned

	// ScopeAll places no ownership filter on listing (managers).
	ScopeAll
)

// PatchField names a field an order patch is allowed to touch.
type PatchField string

const (
	// PatchStatus flips the order between pending and delivery.
	PatchStatus PatchField = "status"

	// PatchDeliveryCrew assigns or reassigns the delivery crew member.
	PatchDeliveryCrew PatchField = "delivery_crew_id"

	// PatchOrderItems is the customer resubmission field. It is accepted
	// for owners but currently applied as a no-op.
	PatchOrderItems PatchField = "orderitem"
)

// ParsePatchFields validates externally supplied patch field names.
// An unknown name is invalid input, not a permission problem.
func ParsePatchFields(names []string) ([]PatchField, error) {
	fields := make([]PatchField, 0, len(names))
	for _, name := range names {
		switch PatchField(name) {
		case PatchStatus, PatchDeliveryCrew, PatchOrderItems:
			fields = append(fields, PatchField(name))
		default:
			return nil, errs.NewValueIsInvalidErrorWithCause("patch field",
				fmt.Errorf("%q is not a patchable order field", name))
		}
	}
	return fields, nil
}

// AccessPolicy is the pure authorization predicate of the system. Every
// decision is a function of (actor role, actor id, action, resource
// ownership fields) and nothing else: no store access, no side effects.
//
// Decision table:
//
//	browse menu            any role
//	manage menu            manager
//	manage groups          manager
//	use cart               customer, exactly
//	checkout               any role
//	list orders            any role, scoped (own / assigned / all)
//	view single order      owner, assigned crew, or manager
//	patch order            manager: status + crew; crew: status on own
//	                       assignment only; customer: orderitem on own order
//	delete order           manager
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanManageMenu gates menu item create/update/delete. Managers only; every
// authenticated role may browse.
func (AccessPolicy) CanManageMenu(role account.Role) error {
	if role != account.RoleManager {
		return errs.NewPermissionDeniedError("manage menu items")
	}
	return nil
}

// CanManageGroups gates group directory reads and mutations. Managers only.
func (AccessPolicy) CanManageGroups(role account.Role) error {
	if role != account.RoleManager {
		return errs.NewPermissionDeniedError("manage group membership")
	}
	return nil
}

// CanUseCart gates every cart operation. Only customers have carts; manager
// and delivery crew requests are forbidden outright.
func (AccessPolicy) CanUseCart(role account.Role) error {
	if role != account.RoleCustomer {
		return errs.NewPermissionDeniedError("access cart")
	}
	return nil
}

// CanCheckout gates order creation from a cart. Any authenticated actor.
func (AccessPolicy) CanCheckout(actor account.Actor) error {
	return actor.Validate()
}

// OrderListScope returns the ownership filter applied when the actor lists
// orders: managers see everything, delivery crew their assignments,
// customers their own orders.
func (AccessPolicy) OrderListScope(actor account.Actor) OrderScope {
	switch actor.Role() {
	case account.RoleManager:
		return ScopeAll
	case account.RoleDeliveryCrew:
		return ScopeAssigned
	default:
		return ScopeOwn
	}
}

// CanViewOrder decides single-order visibility from the order's ownership
// fields. Managers see any order, customers their own, delivery crew the
// orders assigned to them.
func (AccessPolicy) CanViewOrder(actor account.Actor, customerID kernel.UUID, crewID *kernel.UUID) error {
	switch actor.Role() {
	case account.RoleManager:
		return nil
	case account.RoleCustomer:
		if customerID.IsEqual(actor.ID()) {
			return nil
		}
	case account.RoleDeliveryCrew:
		if crewID != nil && crewID.IsEqual(actor.ID()) {
			return nil
		}
	}
	return errs.NewPermissionDeniedError("view order")
}

// CanDeleteOrder gates order deletion. Managers only.
func (AccessPolicy) CanDeleteOrder(role account.Role) error {
	if role != account.RoleManager {
		return errs.NewPermissionDeniedError("delete order")
	}
	return nil
}

// AuthorizeOrderPatch decides whether the actor may touch exactly the given
// field set on the order described by its ownership fields.
//
// Managers may set status and the crew assignment (and may include the
// orderitem field in a full replace). Delivery crew may patch status alone,
// and only on an order assigned to them. Customers may resubmit the
// orderitem field alone, and only on their own order. An empty field set is
// invalid input rather than a permission problem.
func (p AccessPolicy) AuthorizeOrderPatch(
	actor account.Actor,
	customerID kernel.UUID,
	crewID *kernel.UUID,
	fields []PatchField,
) error {
	if len(fields) == 0 {
		return errs.NewValueIsRequiredError("patch fields")
	}

	switch actor.Role() {
	case account.RoleManager:
		return nil

	case account.RoleDeliveryCrew:
		if len(fields) != 1 || fields[0] != PatchStatus {
			return errs.NewPermissionDeniedError("delivery crew may only update the status field")
		}
		if crewID == nil || !crewID.IsEqual(actor.ID()) {
			return errs.NewPermissionDeniedError("update status of an order assigned to someone else")
		}
		return nil

	case account.RoleCustomer:
		if len(fields) != 1 || fields[0] != PatchOrderItems {
			return errs.NewPermissionDeniedError("customers may only resubmit the orderitem field")
		}
		if !customerID.IsEqual(actor.ID()) {
			return errs.NewPermissionDeniedError("update an order owned by someone else")
		}
		return nil
	}

	return errs.NewPermissionDeniedError("update order")
}
