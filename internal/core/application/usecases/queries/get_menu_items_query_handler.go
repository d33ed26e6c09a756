package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMenuItemsQueryHandler retrieves menu catalog pages from the database.
// All filters are applied in SQL so pagination stays correct.
type GetMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemsQueryHandler creates a handler for menu listing queries.
func NewGetMenuItemsQueryHandler(db *gorm.DB) GetMenuItemsQueryHandler {
	return GetMenuItemsQueryHandler{db: db}
}

// Handle executes the menu listing. Results are sorted by the requested key
// with title as the tie-breaker, so pages are stable across requests.
func (h GetMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemsQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			mi.id,
			mi.title,
			mi.price,
			mi.featured,
			mc.id,
			mc.title
		FROM menu_items mi
		JOIN menu_categories mc ON mc.id = mi.category_id
		WHERE 1=1
	`
	args := make([]any, 0, 5)

	if query.Search() != "" {
		sql += " AND mi.title ILIKE ?"
		args = append(args, "%"+query.Search()+"%")
	}
	if query.Category() != "" {
		sql += " AND mc.title = ?"
		args = append(args, query.Category())
	}
	if query.MaxPrice() != nil {
		sql += " AND mi.price <= ?"
		args = append(args, query.MaxPrice().Amount())
	}

	switch query.SortBy() {
	case SortByPrice:
		sql += " ORDER BY mi.price, mi.title"
	default:
		sql += " ORDER BY mi.title"
	}

	sql += " LIMIT ? OFFSET ?"
	args = append(args, query.PerPage(), (query.Page()-1)*query.PerPage())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)

	for rows.Next() {
		var (
			id            uuid.UUID
			title         string
			price         decimal.Decimal
			featured      bool
			categoryID    uuid.UUID
			categoryTitle string
		)

		if err = rows.Scan(&id, &title, &price, &featured, &categoryID, &categoryTitle); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		catID, idErr := kernel.UUIDFromBytes(categoryID[:])
		if idErr != nil {
			return nil, idErr
		}
		itemPrice, moneyErr := kernel.NewMoney(price)
		if moneyErr != nil {
			return nil, moneyErr
		}

		items = append(items, MenuItemResponse{
			ID:         itemID,
			Title:      title,
			Price:      itemPrice,
			Featured:   featured,
			CategoryID: catID,
			Category:   categoryTitle,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
