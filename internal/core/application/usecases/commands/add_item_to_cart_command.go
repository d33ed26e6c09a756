package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrAddItemToCartCommandIsNotConstructed = errors.New(
		"AddItemToCartCommand must be created via NewAddItemToCartCommand constructor",
	)
	ErrMenuItemTitleIsRequired = errors.New("menu item title is required")
)

// AddItemToCartCommand represents a request to put a quantity of a menu item
// into the acting customer's cart. A repeat add of the same item merges into
// the existing line instead of creating a second one.
//
// Example:
//
//	cmd, err := NewAddItemToCartCommand(actor, "Greek Salad", 2)
//	if err != nil {
//	    return fmt.Errorf("invalid cart request: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add to cart: %w", err)
//	}
type AddItemToCartCommand struct { //nolint:recvcheck //using for validation
	actor         account.Actor
	menuItemTitle string
	quantity      int

	guard guard.ConstructorGuard
}

// NewAddItemToCartCommand creates a command to add a menu item to a cart.
// Validates the actor, a non-empty title, and a positive quantity.
func NewAddItemToCartCommand(actor account.Actor, menuItemTitle string, quantity int) (AddItemToCartCommand, error) {
	cmd := AddItemToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setMenuItemTitle(menuItemTitle),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddItemToCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddItemToCartCommandIsNotConstructed)
}

// Actor returns the acting customer.
func (c AddItemToCartCommand) Actor() account.Actor {
	return c.actor
}

// MenuItemTitle returns the title used to look up the menu item.
func (c AddItemToCartCommand) MenuItemTitle() string {
	return c.menuItemTitle
}

// Quantity returns the number of units to add.
func (c AddItemToCartCommand) Quantity() int {
	return c.quantity
}

func (c *AddItemToCartCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *AddItemToCartCommand) setMenuItemTitle(title string) error {
	if title == "" {
		return ErrMenuItemTitleIsRequired
	}
	c.menuItemTitle = title
	return nil
}

func (c *AddItemToCartCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}
