// Package cartrepo provides data transfer objects and mapping functions for
// cart line persistence. The composite primary key on (customer, menu item)
// is what makes a repeat add a merge instead of a second row.
package cartrepo

import (
	"time"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineDTO represents the database structure for persisting cart lines.
type LineDTO struct {
	CustomerID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity   int             `gorm:"type:int;not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	AddedAt    time.Time       `gorm:"not null;index"`
}

// TableName specifies the database table name for cart line entities.
func (LineDTO) TableName() string {
	return "cart_lines"
}

func fromDomain(line *cart.Line) LineDTO {
	return LineDTO{
		CustomerID: line.CustomerID().Bytes(),
		MenuItemID: line.MenuItemID().Bytes(),
		Quantity:   line.Quantity(),
		UnitPrice:  line.UnitPrice().Amount(),
		AddedAt:    line.AddedAt(),
	}
}

func toDomain(dto LineDTO) (*cart.Line, error) {
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return cart.RestoreLine(customerID, menuItemID, dto.Quantity, unitPrice, dto.AddedAt)
}
