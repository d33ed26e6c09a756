// Package menurepo provides data transfer objects and mapping functions for
// menu catalog persistence: categories and the priced items carts reference.
package menurepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO represents the database structure for persisting menu items.
// The unique index on title backs the catalog's title uniqueness rule and
// the cart's add-by-title lookup.
type ItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title      string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Featured   bool            `gorm:"not null"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
}

// TableName specifies the database table name for menu item entities.
func (ItemDTO) TableName() string {
	return "menu_items"
}

// CategoryDTO represents the database structure for persisting menu categories.
type CategoryDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string    `gorm:"type:varchar(255);not null;uniqueIndex"`
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "menu_categories"
}

func itemFromDomain(item *menu.Item) ItemDTO {
	return ItemDTO{
		ID:         item.ID().Bytes(),
		Title:      item.Title(),
		Price:      item.Price().Amount(),
		Featured:   item.Featured(),
		CategoryID: item.CategoryID().Bytes(),
	}
}

func itemToDomain(dto ItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.RestoreItem(id, dto.Title, price, dto.Featured, categoryID)
}

func categoryFromDomain(category *menu.Category) CategoryDTO {
	return CategoryDTO{
		ID:    category.ID().Bytes(),
		Title: category.Title(),
	}
}

func categoryToDomain(dto CategoryDTO) (*menu.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.NewCategory(id, dto.Title)
}
