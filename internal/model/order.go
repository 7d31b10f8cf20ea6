package model

import "time"

// OrderType says how the customer wants to receive the order.
type OrderType string

const (
	OrderDelivery OrderType = "Delivery"
	OrderPickup   OrderType = "Pickup"
	OrderDineIn   OrderType = "Dine-in"
)

// Valid reports whether t is a known order type.
func (t OrderType) Valid() bool {
	switch t {
	case OrderDelivery, OrderPickup, OrderDineIn:
		return true
	}
	return false
}

// OrderStatus tracks kitchen progress on a placed order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderPreparing OrderStatus = "Preparing"
	OrderCompleted OrderStatus = "Completed"
	OrderCancelled OrderStatus = "Cancelled"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Order represents a placed customer order. Items is a snapshot of the cart
// taken at placement time; later cart or menu changes never alter a placed
// order. Total is the precomputed sum of price×quantity over Items, in whole
// rupees.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	Type         OrderType   `json:"type"`
	Items        []CartItem  `json:"items"`
	Total        int         `json:"total"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// PlaceOrderRequest represents the checkout form payload. The order's items
// and total come from the server-side cart, not the request.
type PlaceOrderRequest struct {
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Type         OrderType `json:"type"`
}

// StatusUpdateRequest carries a new status value for a reservation or order.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
