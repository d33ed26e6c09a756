package commands

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
)

// CartAddResult reports how the cart absorbed an addition.
type CartAddResult int

const (
	CartAddResultUnknown CartAddResult = iota
	// CartLineCreated means the item was not in the cart and a new line was written.
	CartLineCreated
	// CartLineMerged means an existing line took the quantity.
	CartLineMerged
)

// AddItemToCartCommandHandler handles the cart upsert. Only customers have
// carts; the access policy rejects every other role before any read.
//
// The read-modify-write on the existing line runs under a row-level lock
// inside the transaction, so two simultaneous adds of the same item by the
// same customer serialize and the final quantity is the sum of both. When
// the line does not exist yet there is no row to lock; the store resolves
// that race by turning the losing insert into a quantity increment.
type AddItemToCartCommandHandler struct {
	uowFactory CartUoWFactory
	policy     services.AccessPolicy
}

// NewAddItemToCartCommandHandler creates a handler for cart additions.
func NewAddItemToCartCommandHandler(uowFactory CartUoWFactory) AddItemToCartCommandHandler {
	return AddItemToCartCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the cart addition. Looks up the menu item by title,
// merges into an existing line or creates a new one with the item's current
// price as the captured unit price, and reports which of the two happened.
func (h AddItemToCartCommandHandler) Handle(
	ctx context.Context,
	cmd AddItemToCartCommand,
) (CartAddResult, error) {
	if err := cmd.Validate(); err != nil {
		return CartAddResultUnknown, err
	}

	if err := h.policy.CanUseCart(cmd.Actor().Role()); err != nil {
		return CartAddResultUnknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CartAddResultUnknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := uow.MenuItemRepository().GetByTitle(ctx, cmd.MenuItemTitle())
	if err != nil {
		return CartAddResultUnknown, err
	}

	result := CartAddResultUnknown
	cartRepo := uow.CartRepository()
	line, err := cartRepo.GetLineForUpdate(ctx, cmd.Actor().ID(), item.ID())
	switch {
	case err == nil:
		if mergeErr := line.Merge(cmd.Quantity()); mergeErr != nil {
			return CartAddResultUnknown, mergeErr
		}
		if updateErr := cartRepo.Update(ctx, line); updateErr != nil {
			return CartAddResultUnknown, updateErr
		}
		result = CartLineMerged

	case errors.Is(err, errs.ErrObjectNotFound):
		newLine, lineErr := cart.NewLine(cmd.Actor().ID(), item.ID(), cmd.Quantity(), item.Price(), time.Now())
		if lineErr != nil {
			return CartAddResultUnknown, lineErr
		}
		if addErr := cartRepo.Add(ctx, newLine); addErr != nil {
			return CartAddResultUnknown, addErr
		}
		result = CartLineCreated

	default:
		return CartAddResultUnknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CartAddResultUnknown, err
	}

	return result, nil
}
