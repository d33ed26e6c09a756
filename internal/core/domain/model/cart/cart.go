// Package cart provides the shopping cart side of the domain model.
//
// A cart is the set of Lines owned by one customer. There is at most one
// line per (customer, menu item) pair: adding an item that is already in the
// cart merges quantities instead of creating a second line. Lines copy the
// menu item's unit price at add time; the line price is always
// unit price x quantity.
package cart

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrLineIsNotConstructed is returned when a Line instance was not
	// created through NewLine or RestoreLine.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
)

// Line is one (customer, menu item) cart entry pending checkout.
//
// Invariants:
//   - Quantity is at least 1
//   - UnitPrice is the menu item price captured when the line was created
//   - Price is derived: unit price x quantity, recomputed on every merge
type Line struct {
	customerID kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	addedAt    time.Time

	isConstructed bool
}

// NewLine creates a validated cart line. unitPrice is copied from the menu
// item by the caller; addedAt records when the line entered the cart.
func NewLine(customerID, menuItemID kernel.UUID, quantity int, unitPrice kernel.Money, addedAt time.Time) (*Line, error) {
	line := &Line{
		addedAt:       addedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		line.setCustomerID(customerID),
		line.setMenuItemID(menuItemID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine reconstructs a Line from persistence.
func RestoreLine(customerID, menuItemID kernel.UUID, quantity int, unitPrice kernel.Money, addedAt time.Time) (*Line, error) {
	return NewLine(customerID, menuItemID, quantity, unitPrice, addedAt)
}

// Validate ensures the Line was built through a constructor.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// CustomerID returns the identifier of the cart's owner.
func (l *Line) CustomerID() kernel.UUID {
	return l.customerID
}

// MenuItemID returns the identifier of the referenced menu item.
func (l *Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns the number of units on the line.
func (l *Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price per unit captured at add time.
func (l *Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Price returns the line total: unit price x quantity.
func (l *Line) Price() kernel.Money {
	return l.unitPrice.MulInt(l.quantity)
}

// AddedAt returns when the line was first added to the cart.
func (l *Line) AddedAt() time.Time {
	return l.addedAt
}

// Merge folds a repeat add of the same menu item into this line by
// incrementing the quantity. The unit price captured at first add is kept.
func (l *Line) Merge(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity += quantity
	return nil
}

func (l *Line) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	l.customerID = customerID
	return nil
}

func (l *Line) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	l.menuItemID = menuItemID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice kernel.Money) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidError("unit price must be greater than 0")
	}
	l.unitPrice = unitPrice
	return nil
}
