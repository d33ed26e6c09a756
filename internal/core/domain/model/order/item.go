package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through newItemFromLine or RestoreItem.
	ErrItemIsNotConstructed = errors.New("order Item must be created via its constructor")
)

// Item is one immutable snapshot row of an order: the menu item, quantity,
// and unit price exactly as they stood in the cart at checkout. Items are
// owned exclusively by their Order and are deleted with it.
type Item struct {
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money

	isConstructed bool
}

// newItemFromLine snapshots a cart line. Only checkout creates items, so the
// constructor is package-private; the Order constructor calls it per line.
func newItemFromLine(line *cart.Line) (Item, error) {
	if err := line.Validate(); err != nil {
		return Item{}, err
	}

	return Item{
		menuItemID:    line.MenuItemID(),
		quantity:      line.Quantity(),
		unitPrice:     line.UnitPrice(),
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs an Item snapshot from persistence.
func RestoreItem(menuItemID kernel.UUID, quantity int, unitPrice kernel.Money) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if !unitPrice.IsPositive() {
		return Item{}, errs.NewValueIsInvalidError("unit price must be greater than 0")
	}

	return Item{
		menuItemID:    menuItemID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was built through a constructor.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// MenuItemID returns the identifier of the snapshotted menu item.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the unit price captured at checkout.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Price returns the snapshot line total: unit price x quantity.
func (i Item) Price() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}
