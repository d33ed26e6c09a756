package http

import (
	"ordering/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MenuItem is the JSON shape of a catalog entry. Prices travel as decimal
// strings to avoid float rounding on the wire.
type MenuItem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Price      string `json:"price"`
	Featured   bool   `json:"featured"`
	CategoryID string `json:"category_id"`
	Category   string `json:"category,omitempty"`
}

// NewMenuItem is the request body for creating or replacing a menu item.
type NewMenuItem struct {
	Title      string `json:"title"`
	Price      string `json:"price"`
	Featured   bool   `json:"featured"`
	CategoryID string `json:"category_id"`
}

// CartLine is one line of the cart view.
type CartLine struct {
	MenuItemID string `json:"menu_item_id"`
	Title      string `json:"title"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	Price      string `json:"price"`
}

// Cart is the cart view with its running total.
type Cart struct {
	Lines []CartLine `json:"lines"`
	Total string     `json:"total"`
}

// AddCartLine is the request body for adding a menu item to the cart.
// The item is referenced by title, matching how customers pick it off the menu.
type AddCartLine struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}

// Order is the JSON shape of an order summary row.
type Order struct {
	ID             string  `json:"id"`
	CustomerID     string  `json:"customer_id"`
	DeliveryCrewID *string `json:"delivery_crew_id"`
	Status         string  `json:"status"`
	Total          string  `json:"total"`
	PlacedAt       string  `json:"placed_at"`
}

// OrderItem is one immutable checkout snapshot row.
type OrderItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	Price      string `json:"price"`
}

// OrderDetail is an order together with its item snapshots.
type OrderDetail struct {
	Order Order       `json:"order"`
	Items []OrderItem `json:"items"`
}

// OrderPatch is the request body for PUT and PATCH on an order. Absent
// fields stay untouched; which fields an actor may send depends on their role.
type OrderPatch struct {
	Status         *string `json:"status"`
	DeliveryCrewID *string `json:"delivery_crew_id"`
	ResubmitItems  *bool   `json:"resubmit_items"`
}

// CheckoutResponse carries the identifier of the freshly placed order.
type CheckoutResponse struct {
	OrderID string `json:"order_id"`
}

// GroupUser is one member of a role group.
type GroupUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// NewGroupUser is the request body for adding a user to a group by username.
type NewGroupUser struct {
	Username string `json:"username"`
}

func menuItemFromResponse(item queries.MenuItemResponse) MenuItem {
	return MenuItem{
		ID:         item.ID.String(),
		Title:      item.Title,
		Price:      item.Price.String(),
		Featured:   item.Featured,
		CategoryID: item.CategoryID.String(),
		Category:   item.Category,
	}
}

func cartFromResponse(response queries.GetCartQueryResponse) Cart {
	lines := make([]CartLine, 0, len(response.Lines))
	for _, line := range response.Lines {
		lines = append(lines, CartLine{
			MenuItemID: line.MenuItemID.String(),
			Title:      line.Title,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice.String(),
			Price:      line.Price.String(),
		})
	}

	return Cart{Lines: lines, Total: response.Total.String()}
}

func orderFromResponse(response queries.OrderResponse) Order {
	var crewID *string
	if response.DeliveryCrewID != nil {
		s := response.DeliveryCrewID.String()
		crewID = &s
	}

	return Order{
		ID:             response.ID.String(),
		CustomerID:     response.CustomerID.String(),
		DeliveryCrewID: crewID,
		Status:         response.Status,
		Total:          response.Total.String(),
		PlacedAt:       response.PlacedAt.UTC().Format(timeFormat),
	}
}

func orderDetailFromResponse(response queries.GetOrderQueryResponse) OrderDetail {
	items := make([]OrderItem, 0, len(response.Items))
	for _, item := range response.Items {
		items = append(items, OrderItem{
			MenuItemID: item.MenuItemID.String(),
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.String(),
			Price:      item.Price.String(),
		})
	}

	return OrderDetail{Order: orderFromResponse(response.Order), Items: items}
}
