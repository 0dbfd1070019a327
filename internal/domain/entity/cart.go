// Package entity contains the core business objects of the project.
package entity

// CartItem is one line of the cart: a product snapshot and how many of it.
// The product data is the state it had when added; the backend re-validates
// price and stock at order time.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns price times quantity for this line.
func (i CartItem) LineTotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// Cart holds the current line items. At most one item exists per product id;
// no item ever carries a quantity below one. Totals are always derived from
// the items, never stored, so they cannot drift.
type Cart struct {
	Items []CartItem `json:"items"`
}

// TotalPrice sums price*quantity over all line items.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.LineTotal()
	}

	return total
}

// TotalItems sums the quantities over all line items.
func (c *Cart) TotalItems() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// Find returns the index of the line holding productID, or -1.
func (c *Cart) Find(productID string) int {
	for i, item := range c.Items {
		if item.Product.ID == productID {
			return i
		}
	}

	return -1
}
