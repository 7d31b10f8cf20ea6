package model

// CartItem is a menu item in the shopping cart with a quantity. Quantity is
// always at least 1; an entry that reaches 0 is removed from the cart rather
// than kept.
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// AddToCartRequest identifies the menu item to add to the cart.
type AddToCartRequest struct {
	ItemID string `json:"itemId"`
}

// QuantityUpdateRequest carries a signed quantity adjustment for a cart entry.
type QuantityUpdateRequest struct {
	Delta int `json:"delta"`
}
