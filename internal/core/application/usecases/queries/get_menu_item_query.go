package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetMenuItemQueryIsNotConstructed = errors.New(
		"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
	)
)

// GetMenuItemQuery retrieves a single catalog entry by ID.
type GetMenuItemQuery struct {
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMenuItemQuery creates a query for one menu item.
func NewGetMenuItemQuery(itemID kernel.UUID) (GetMenuItemQuery, error) {
	if err := itemID.Validate(); err != nil {
		return GetMenuItemQuery{}, err
	}

	return GetMenuItemQuery{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

// ItemID returns the target item's identifier.
func (q GetMenuItemQuery) ItemID() kernel.UUID {
	return q.itemID
}
