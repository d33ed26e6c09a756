package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its snapshots. The
// existence check runs before the visibility check, so the caller can map an
// unknown ID to not-found and a foreign order to forbidden.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle executes the read.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			delivery_crew_id,
			status,
			total,
			placed_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var (
		id         uuid.UUID
		customerID uuid.UUID
		crewID     uuid.NullUUID
		status     string
		total      decimal.Decimal
		placedAt   time.Time
	)

	err := row.Scan(&id, &customerID, &crewID, &status, &total, &placedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderResp, err := buildOrderResponse(id, customerID, crewID, status, total, placedAt)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if err = h.policy.CanViewOrder(
		query.Actor(), orderResp.CustomerID, orderResp.DeliveryCrewID); err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{Order: orderResp, Items: items}, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_item_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY menu_item_id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)

	for rows.Next() {
		var (
			menuItemID uuid.UUID
			quantity   int
			unitPrice  decimal.Decimal
		)

		if err = rows.Scan(&menuItemID, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		price, moneyErr := kernel.NewMoney(unitPrice)
		if moneyErr != nil {
			return nil, moneyErr
		}

		items = append(items, OrderItemResponse{
			MenuItemID: itemID,
			Quantity:   quantity,
			UnitPrice:  price,
			Price:      price.MulInt(quantity),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
