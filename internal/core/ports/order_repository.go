package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its item snapshots move together: Add writes both, Delete
// cascades to the snapshots, Get reconstructs the complete aggregate.
type OrderRepository interface {
	// Add persists a new order together with all of its item snapshots.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable order fields (status, delivery crew).
	// Item snapshots and the total are immutable and never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its item snapshots.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and cascades to its item snapshots.
	Delete(ctx context.Context, id kernel.UUID) error
}
