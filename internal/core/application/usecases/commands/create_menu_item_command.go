package commands

import (
	"errors"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
)

// CreateMenuItemCommand represents a manager's request to add a catalog entry.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	actor      account.Actor
	title      string
	price      kernel.Money
	featured   bool
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a menu item.
func NewCreateMenuItemCommand(
	actor account.Actor,
	title string,
	price kernel.Money,
	featured bool,
	categoryID kernel.UUID,
) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		price:    price,
		featured: featured,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setTitle(title),
		cmd.setCategoryID(categoryID),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c CreateMenuItemCommand) Actor() account.Actor {
	return c.actor
}

// Title returns the new item's title.
func (c CreateMenuItemCommand) Title() string {
	return c.title
}

// Price returns the new item's unit price.
func (c CreateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// Featured reports whether the item should be highlighted.
func (c CreateMenuItemCommand) Featured() bool {
	return c.featured
}

// CategoryID returns the owning category's identifier.
func (c CreateMenuItemCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

func (c *CreateMenuItemCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateMenuItemCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

func (c *CreateMenuItemCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	c.categoryID = categoryID
	return nil
}
