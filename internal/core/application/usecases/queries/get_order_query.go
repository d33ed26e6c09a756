package queries

import (
	"errors"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its item snapshots. Visibility is
// checked against the loaded row: an unknown ID is not found, a known order
// the actor may not see is a permission error.
type GetOrderQuery struct {
	actor   account.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a single-order query.
func NewGetOrderQuery(actor account.Actor, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q GetOrderQuery) Actor() account.Actor {
	return q.actor
}

// OrderID returns the target order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the single-order read model: the order row plus
// its immutable item snapshots.
type GetOrderQueryResponse struct {
	Order OrderResponse
	Items []OrderItemResponse
}

// OrderItemResponse is one checkout snapshot row. Price is derived:
// unit price x quantity.
type OrderItemResponse struct {
	MenuItemID kernel.UUID
	Quantity   int
	UnitPrice  kernel.Money
	Price      kernel.Money
}
