package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrEmptyCart is returned when checkout is attempted with no cart
	// lines. A zero-total order is never created.
	ErrEmptyCart = errs.NewValueIsRequiredError("cart must contain at least one line to check out")
)

// Order is the aggregate root created at checkout. It exclusively owns its
// Item snapshots; deleting the order deletes them.
//
// Invariants:
//   - Must have a valid unique identifier and owner
//   - Has at least one item snapshot
//   - Total is the sum of the snapshot prices, fixed at creation
//   - Status and the delivery crew assignment are the only mutable fields
type Order struct {
	id             kernel.UUID
	customerID     kernel.UUID
	deliveryCrewID *kernel.UUID
	status         Status
	total          kernel.Money
	placedAt       time.Time
	items          []Item

	isConstructed bool
}

// NewOrder converts a customer's cart lines into a pending order. Each line
// becomes one Item snapshot; the total is the sum of the line prices. An
// empty line set returns ErrEmptyCart.
func NewOrder(id, customerID kernel.UUID, lines []*cart.Line, placedAt time.Time) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]Item, 0, len(lines))
	total := kernel.ZeroMoney()
	for _, line := range lines {
		item, err := newItemFromLine(line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		total = total.Add(item.Price())
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		status:        StatusPending,
		total:         total,
		placedAt:      placedAt,
		items:         items,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence.
func RestoreOrder(
	id, customerID kernel.UUID,
	deliveryCrewID *kernel.UUID,
	status Status,
	total kernel.Money,
	placedAt time.Time,
	items []Item,
) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if deliveryCrewID != nil {
		if err := deliveryCrewID.Validate(); err != nil {
			return nil, err
		}
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:             id,
		customerID:     customerID,
		deliveryCrewID: deliveryCrewID,
		status:         status,
		total:          total,
		placedAt:       placedAt,
		items:          items,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the owning customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DeliveryCrew returns the assigned crew member's ID, or nil if unassigned.
func (o *Order) DeliveryCrew() *kernel.UUID {
	return o.deliveryCrewID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the immutable order total captured at checkout.
func (o *Order) Total() kernel.Money {
	return o.total
}

// PlacedAt returns when the order was created.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Items returns the order's snapshot rows. The slice is a copy; snapshots
// themselves are immutable.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// AssignCrew assigns or reassigns the order to a delivery crew member.
// The caller is responsible for verifying the assignee actually has the
// delivery crew role; the aggregate only checks identifier validity.
func (o *Order) AssignCrew(crewID kernel.UUID) error {
	if err := crewID.Validate(); err != nil {
		return err
	}
	o.deliveryCrewID = &crewID
	return nil
}

// ChangeStatus moves the order through the pending/delivery lifecycle.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}
