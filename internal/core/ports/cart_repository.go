package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart lines. The store
// guarantees at most one line per (customer, menu item) pair.
type CartRepository interface {
	// Add persists a new cart line. A concurrent insert of the same
	// (customer, menu item) pair lands as a quantity increment on the
	// existing row instead of a duplicate-key failure.
	Add(ctx context.Context, line *cart.Line) error

	// Update persists a merged cart line (new quantity).
	Update(ctx context.Context, line *cart.Line) error

	// GetLineForUpdate retrieves the line for a (customer, menu item) pair
	// holding a row-level lock until the surrounding transaction ends, so
	// concurrent adds of the same item serialize instead of losing an
	// increment. Returns ObjectNotFound when the pair has no line yet.
	GetLineForUpdate(ctx context.Context, customerID, menuItemID kernel.UUID) (*cart.Line, error)

	// GetAllByCustomer retrieves every line in the customer's cart.
	// No ordering is guaranteed.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*cart.Line, error)

	// DeleteAllByCustomer clears the customer's cart. Clearing an empty
	// cart is a silent success.
	DeleteAllByCustomer(ctx context.Context, customerID kernel.UUID) error

	// DeleteOlderThan removes lines added before the cutoff, returning how
	// many were pruned. Used by the stale-cart janitor.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
