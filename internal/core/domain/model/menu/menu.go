// Package menu provides the catalog side of the domain model: categories and
// the menu items customers add to their carts.
//
// Menu item prices feed cart lines and order snapshots by copy, so editing a
// price here never changes a line or order that already captured it.
package menu

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrCategoryIsNotConstructed is returned when a Category instance was
	// not created through NewCategory.
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Category groups menu items for browsing and filtering.
type Category struct {
	id    kernel.UUID
	title string

	isConstructed bool
}

// NewCategory creates a validated Category.
func NewCategory(id kernel.UUID, title string) (*Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("category title")
	}

	return &Category{id: id, title: title, isConstructed: true}, nil
}

// Validate ensures the Category was built through NewCategory.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Title returns the category's display name.
func (c *Category) Title() string {
	return c.title
}

// Item is a menu item: the priced catalog entry carts and orders reference.
//
// Invariants:
//   - Title is required and unique across the catalog (uniqueness enforced
//     by the repository)
//   - Price must be strictly positive
//   - Must belong to a category
type Item struct {
	id         kernel.UUID
	title      string
	price      kernel.Money
	featured   bool
	categoryID kernel.UUID

	isConstructed bool
}

// NewItem creates a validated menu Item.
func NewItem(id kernel.UUID, title string, price kernel.Money, featured bool, categoryID kernel.UUID) (*Item, error) {
	item := &Item{
		featured:      featured,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setTitle(title),
		item.setPrice(price),
		item.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence.
func RestoreItem(id kernel.UUID, title string, price kernel.Money, featured bool, categoryID kernel.UUID) (*Item, error) {
	return NewItem(id, title, price, featured, categoryID)
}

// Validate ensures the Item was built through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Title returns the item's unique display name.
func (i *Item) Title() string {
	return i.title
}

// Price returns the current unit price. Cart lines and order items copy this
// value at add time, so later changes do not drift into past orders.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Featured reports whether the item is highlighted on the menu.
func (i *Item) Featured() bool {
	return i.featured
}

// CategoryID returns the identifier of the owning category.
func (i *Item) CategoryID() kernel.UUID {
	return i.categoryID
}

// Update replaces the item's mutable attributes after validating them.
func (i *Item) Update(title string, price kernel.Money, featured bool, categoryID kernel.UUID) error {
	if err := errors.Join(
		i.setTitle(title),
		i.setPrice(price),
		i.setCategoryID(categoryID),
	); err != nil {
		return err
	}

	i.featured = featured
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	i.title = title
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidError("price must be greater than 0")
	}
	i.price = price
	return nil
}

func (i *Item) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	i.categoryID = categoryID
	return nil
}
