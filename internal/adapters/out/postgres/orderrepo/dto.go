// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order and its item snapshots form one aggregate: Add
// writes both, Delete cascades to the snapshots.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored by its wire name; the total is fixed at checkout and
// never rewritten by Update.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeliveryCrewID *uuid.UUID      `gorm:"type:uuid;index"`
	Status         string          `gorm:"type:varchar(32);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PlacedAt       time.Time       `gorm:"not null;index"`
	Items          []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the database structure for persisting order item
// snapshots. Rows are immutable once written.
type ItemDTO struct {
	OrderID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity   int             `gorm:"type:int;not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName specifies the database table name for order item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var crewID *uuid.UUID
	if id := aggregate.DeliveryCrew(); id != nil {
		raw := id.Bytes()
		crewID = &raw
	}

	domainItems := aggregate.Items()
	items := make([]ItemDTO, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, ItemDTO{
			OrderID:    orderID,
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:             orderID,
		CustomerID:     aggregate.CustomerID().Bytes(),
		DeliveryCrewID: crewID,
		Status:         aggregate.Status().String(),
		Total:          aggregate.Total().Amount(),
		PlacedAt:       aggregate.PlacedAt(),
		Items:          items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var crewID *kernel.UUID
	if dto.DeliveryCrewID != nil {
		cID, crewErr := kernel.UUIDFromBytes((*dto.DeliveryCrewID)[:])
		if crewErr != nil {
			return nil, crewErr
		}
		crewID = &cID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, crewID, status, total, dto.PlacedAt, items)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(menuItemID, dto.Quantity, unitPrice)
}
