package models

// CartItem is a product snapshot captured at add-to-cart time, plus a
// quantity. The cart holds at most one item per product id; re-adding a
// product increments Quantity instead of duplicating the line.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal returns the price contribution of this line.
func (c CartItem) Subtotal() float64 {
	return c.Price * float64(c.Quantity)
}

// CartSubtotal sums the line subtotals of the given cart.
func CartSubtotal(cart []CartItem) float64 {
	var total float64
	for _, item := range cart {
		total += item.Subtotal()
	}
	return total
}
