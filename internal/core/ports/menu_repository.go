// Package ports defines the persistence contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu items.
// Title uniqueness is enforced here (backed by a unique index): Add and
// Update return an invalid-value error on a duplicate title.
type MenuItemRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, item *menu.Item) error

	// Update persists changes to an existing menu item.
	Update(ctx context.Context, item *menu.Item) error

	// Get retrieves a menu item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.Item, error)

	// GetByTitle retrieves a menu item by its unique title.
	// This is the lookup the cart add operation uses.
	GetByTitle(ctx context.Context, title string) (*menu.Item, error)

	// Delete removes a menu item.
	Delete(ctx context.Context, id kernel.UUID) error
}

// CategoryRepository defines the persistence contract for menu categories.
// Categories are plain reference data; no domain logic attaches to them.
type CategoryRepository interface {
	// Add persists a new category.
	Add(ctx context.Context, category *menu.Category) error

	// Get retrieves a category by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.Category, error)
}
