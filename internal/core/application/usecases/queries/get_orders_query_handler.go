package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves the orders visible to the actor, newest
// first. The role-derived scope becomes a WHERE clause, so a customer can
// never receive a row they do not own.
type GetOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetOrdersQueryHandler creates a handler for scoped order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle executes the scoped listing.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			customer_id,
			delivery_crew_id,
			status,
			total,
			placed_at
		FROM orders
	`
	args := make([]any, 0, 1)

	switch h.policy.OrderListScope(query.Actor()) {
	case services.ScopeOwn:
		sqlText += " WHERE customer_id = ?"
		args = append(args, query.Actor().ID().String())
	case services.ScopeAssigned:
		sqlText += " WHERE delivery_crew_id = ?"
		args = append(args, query.Actor().ID().String())
	case services.ScopeAll:
	}

	sqlText += " ORDER BY placed_at DESC, id"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var (
			id         uuid.UUID
			customerID uuid.UUID
			crewID     uuid.NullUUID
			status     string
			total      decimal.Decimal
			placedAt   time.Time
		)

		if err = rows.Scan(&id, &customerID, &crewID, &status, &total, &placedAt); err != nil {
			return nil, err
		}

		resp, respErr := buildOrderResponse(id, customerID, crewID, status, total, placedAt)
		if respErr != nil {
			return nil, respErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func buildOrderResponse(
	id, customerID uuid.UUID,
	crewID uuid.NullUUID,
	status string,
	total decimal.Decimal,
	placedAt time.Time,
) (OrderResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	var deliveryCrewID *kernel.UUID
	if crewID.Valid {
		crew, crewErr := kernel.UUIDFromBytes(crewID.UUID[:])
		if crewErr != nil {
			return OrderResponse{}, crewErr
		}
		deliveryCrewID = &crew
	}

	orderTotal, err := kernel.NewMoney(total)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:             orderID,
		CustomerID:     ownerID,
		DeliveryCrewID: deliveryCrewID,
		Status:         status,
		Total:          orderTotal,
		PlacedAt:       placedAt,
	}, nil
}
