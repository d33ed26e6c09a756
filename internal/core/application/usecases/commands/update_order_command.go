package commands

import (
	"errors"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a role-gated write to an existing order.
// It serves both PUT and PATCH: the field set is whatever the request
// provided, and the access policy decides whether the actor may touch
// exactly that set.
//
//   - status: flips the order between pending and delivery
//   - deliveryCrewID: assigns or reassigns a crew member
//   - resubmitItems: the customer orderitem field (accepted, applied as a
//     no-op until real resubmission semantics exist)
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	actor          account.Actor
	orderID        kernel.UUID
	status         *order.Status
	deliveryCrewID *kernel.UUID
	resubmitItems  bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates an order update command. Nil pointers mean
// "field not in the patch". At least one field must be present; field-level
// permissions are checked later against the loaded order.
func NewUpdateOrderCommand(
	actor account.Actor,
	orderID kernel.UUID,
	status *order.Status,
	deliveryCrewID *kernel.UUID,
	resubmitItems bool,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		status:         status,
		deliveryCrewID: deliveryCrewID,
		resubmitItems:  resubmitItems,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.validateFields(),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c UpdateOrderCommand) Actor() account.Actor {
	return c.actor
}

// OrderID returns the target order's identifier.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested status, or nil if not in the patch.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// DeliveryCrewID returns the requested crew assignment, or nil if not in the patch.
func (c UpdateOrderCommand) DeliveryCrewID() *kernel.UUID {
	return c.deliveryCrewID
}

// ResubmitItems reports whether the patch carried the orderitem field.
func (c UpdateOrderCommand) ResubmitItems() bool {
	return c.resubmitItems
}

// Fields returns the patch field set for policy evaluation.
func (c UpdateOrderCommand) Fields() []services.PatchField {
	fields := make([]services.PatchField, 0, 3)
	if c.status != nil {
		fields = append(fields, services.PatchStatus)
	}
	if c.deliveryCrewID != nil {
		fields = append(fields, services.PatchDeliveryCrew)
	}
	if c.resubmitItems {
		fields = append(fields, services.PatchOrderItems)
	}
	return fields
}

func (c *UpdateOrderCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) validateFields() error {
	if c.status != nil {
		if err := c.status.Validate(); err != nil {
			return err
		}
	}
	if c.deliveryCrewID != nil {
		if err := c.deliveryCrewID.Validate(); err != nil {
			return err
		}
	}
	return nil
}
