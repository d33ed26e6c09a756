package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMenuItemQueryHandler retrieves a single menu item with its category.
type GetMenuItemQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemQueryHandler creates a handler for single menu item reads.
func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db}
}

// Handle executes the read. An unknown ID is an object-not-found error.
func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return MenuItemResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			mi.id,
			mi.title,
			mi.price,
			mi.featured,
			mc.id,
			mc.title
		FROM menu_items mi
		JOIN menu_categories mc ON mc.id = mi.category_id
		WHERE mi.id = ?
	`, query.ItemID().String()).Row()

	var (
		id            uuid.UUID
		title         string
		price         decimal.Decimal
		featured      bool
		categoryID    uuid.UUID
		categoryTitle string
	)

	err := row.Scan(&id, &title, &price, &featured, &categoryID, &categoryTitle)
	if errors.Is(err, sql.ErrNoRows) {
		return MenuItemResponse{}, errs.NewObjectNotFoundError("menuItemID", query.ItemID())
	}
	if err != nil {
		return MenuItemResponse{}, err
	}

	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return MenuItemResponse{}, err
	}
	catID, err := kernel.UUIDFromBytes(categoryID[:])
	if err != nil {
		return MenuItemResponse{}, err
	}
	itemPrice, err := kernel.NewMoney(price)
	if err != nil {
		return MenuItemResponse{}, err
	}

	return MenuItemResponse{
		ID:         itemID,
		Title:      title,
		Price:      itemPrice,
		Featured:   featured,
		CategoryID: catID,
		Category:   categoryTitle,
	}, nil
}
