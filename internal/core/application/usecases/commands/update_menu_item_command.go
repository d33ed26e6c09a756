package commands

import (
	"errors"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
		"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
	)
)

// UpdateMenuItemCommand represents a manager's full replacement of a catalog
// entry's attributes. Carts and orders keep the prices they captured.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	actor      account.Actor
	itemID     kernel.UUID
	title      string
	price      kernel.Money
	featured   bool
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to replace a menu item's attributes.
func NewUpdateMenuItemCommand(
	actor account.Actor,
	itemID kernel.UUID,
	title string,
	price kernel.Money,
	featured bool,
	categoryID kernel.UUID,
) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		price:    price,
		featured: featured,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setItemID(itemID),
		cmd.setTitle(title),
		cmd.setCategoryID(categoryID),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c UpdateMenuItemCommand) Actor() account.Actor {
	return c.actor
}

// ItemID returns the target item's identifier.
func (c UpdateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Title returns the replacement title.
func (c UpdateMenuItemCommand) Title() string {
	return c.title
}

// Price returns the replacement unit price.
func (c UpdateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// Featured reports whether the item should be highlighted.
func (c UpdateMenuItemCommand) Featured() bool {
	return c.featured
}

// CategoryID returns the replacement category identifier.
func (c UpdateMenuItemCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

func (c *UpdateMenuItemCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *UpdateMenuItemCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

func (c *UpdateMenuItemCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	c.categoryID = categoryID
	return nil
}
