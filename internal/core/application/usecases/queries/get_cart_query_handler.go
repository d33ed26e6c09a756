package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads the customer's cart lines joined with the menu
// catalog for display titles. Only customers have carts; other roles are
// rejected before the read.
type GetCartQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetCartQueryHandler creates a handler for cart reads.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle executes the cart read. Lines are ordered by when they were added,
// oldest first, so the cart renders in the order it was built.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	if err := h.policy.CanUseCart(query.Actor().Role()); err != nil {
		return GetCartQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			cl.menu_item_id,
			mi.title,
			cl.quantity,
			cl.unit_price
		FROM cart_lines cl
		JOIN menu_items mi ON mi.id = cl.menu_item_id
		WHERE cl.customer_id = ?
		ORDER BY cl.added_at
	`, query.Actor().ID().String()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	response := GetCartQueryResponse{
		Lines: make([]CartLineResponse, 0),
		Total: kernel.ZeroMoney(),
	}

	for rows.Next() {
		var (
			menuItemID uuid.UUID
			title      string
			quantity   int
			unitPrice  decimal.Decimal
		)

		if err = rows.Scan(&menuItemID, &title, &quantity, &unitPrice); err != nil {
			return GetCartQueryResponse{}, err
		}

		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}

		price, moneyErr := kernel.NewMoney(unitPrice)
		if moneyErr != nil {
			return GetCartQueryResponse{}, moneyErr
		}

		line := CartLineResponse{
			MenuItemID: itemID,
			Title:      title,
			Quantity:   quantity,
			UnitPrice:  price,
			Price:      price.MulInt(quantity),
		}
		response.Lines = append(response.Lines, line)
		response.Total = response.Total.Add(line.Price)
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}
