// Package queries contains read operations that bypass the domain model and
// read the database directly. Implements the query side of the CQRS
// architecture: constructor-validated query objects, raw SQL read models,
// access scoping applied in the WHERE clause.
package queries

import (
	"errors"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery retrieves the acting customer's cart: every line joined with
// its menu item title, plus the running total.
type GetCartQuery struct {
	actor account.Actor

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the actor's cart contents.
func NewGetCartQuery(actor account.Actor) (GetCartQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// Actor returns the acting customer.
func (q GetCartQuery) Actor() account.Actor {
	return q.actor
}

// GetCartQueryResponse is the cart read model: the lines and their sum.
// An empty cart is a valid response with a zero total.
type GetCartQueryResponse struct {
	Lines []CartLineResponse
	Total kernel.Money
}

// CartLineResponse is one cart line with its menu item title resolved.
// Price is the line total: unit price x quantity.
type CartLineResponse struct {
	MenuItemID kernel.UUID
	Title      string
	Quantity   int
	UnitPrice  kernel.Money
	Price      kernel.Money
}
