package commands

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies role-gated order updates.
//
// Order of checks matters: the order is loaded first (absent orders are 404
// regardless of role), then the policy authorizes the exact field set
// against the order's ownership, and only then is anything mutated. A
// rejected request therefore never leaves a partial side effect.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the order update command.
//
// A crew assignment validates that the assignee exists and actually resolves
// to the delivery crew role; assigning anyone else is invalid input. A
// status change goes through the domain state machine. The customer
// orderitem resubmission is authorized but deliberately applied as a no-op.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeOrderPatch(cmd.Actor(), o.CustomerID(), o.DeliveryCrew(), cmd.Fields()); err != nil {
		return err
	}

	mutated := false

	if crewID := cmd.DeliveryCrewID(); crewID != nil {
		assignee, accErr := uow.AccountRepository().Get(ctx, *crewID)
		if accErr != nil {
			return accErr
		}
		if assignee.Role() != account.RoleDeliveryCrew {
			return errs.NewValueIsInvalidErrorWithCause("delivery_crew_id",
				fmt.Errorf("account %s is not a delivery crew member", assignee.Username()))
		}
		if err = o.AssignCrew(*crewID); err != nil {
			return err
		}
		mutated = true
	}

	if status := cmd.Status(); status != nil {
		if err = o.ChangeStatus(*status); err != nil {
			return err
		}
		mutated = true
	}

	// cmd.ResubmitItems() is accepted for owners but has no effect yet.

	if mutated {
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
