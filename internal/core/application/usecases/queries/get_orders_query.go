package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery lists orders visible to the actor. The visibility scope is
// derived from the actor's role: customers see their own orders, delivery
// crew their assignments, managers everything.
type GetOrdersQuery struct {
	actor account.Actor

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a scoped order listing query.
func NewGetOrdersQuery(actor account.Actor) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q GetOrdersQuery) Actor() account.Actor {
	return q.actor
}

// OrderResponse is one order row in the listing read model. Items are not
// expanded in listings; the single-order query returns them.
type OrderResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	DeliveryCrewID *kernel.UUID
	Status         string
	Total          kernel.Money
	PlacedAt       time.Time
}
