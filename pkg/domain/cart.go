package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// CartItem is one cart line. It carries a snapshot of the product as it was
// when added, not a live reference into the catalog.
type CartItem struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// NewCartItem creates a line with a fresh item id.
func NewCartItem(product Product, quantity int) CartItem {
	return CartItem{
		ID:       uuid.NewString(),
		Product:  product,
		Quantity: quantity,
	}
}

// TotalCents is quantity times unit price.
func (i CartItem) TotalCents() int {
	return i.Product.PriceCents * i.Quantity
}

// TotalDisplay renders the line total in whole currency units.
func (i CartItem) TotalDisplay() string {
	return fmt.Sprintf("$%d", i.TotalCents()/100)
}

// Cart is an ordered collection of lines, at most one per product id.
// Quantities are always >= 1: any mutation that would leave a line at zero
// removes the line instead.
type Cart struct {
	Items []CartItem `json:"items"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add merges quantity into an existing line for the product, or appends a new
// line.
func (c *Cart) Add(product Product, quantity int) {
	for idx := range c.Items {
		if c.Items[idx].Product.ID == product.ID {
			c.Items[idx].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, NewCartItem(product, quantity))
}

// Remove drops the line for productID. Removing an absent id is a no-op.
func (c *Cart) Remove(productID string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

// SetQuantity sets the line quantity, removing the line when quantity <= 0.
func (c *Cart) SetQuantity(productID string, quantity int) {
	for idx := range c.Items {
		if c.Items[idx].Product.ID == productID {
			if quantity <= 0 {
				c.Remove(productID)
			} else {
				c.Items[idx].Quantity = quantity
			}
			return
		}
	}
}

// Increment raises the line quantity by one.
func (c *Cart) Increment(productID string) {
	for idx := range c.Items {
		if c.Items[idx].Product.ID == productID {
			c.Items[idx].Quantity++
			return
		}
	}
}

// Decrement lowers the line quantity by one, removing the line at quantity 1.
func (c *Cart) Decrement(productID string) {
	for idx := range c.Items {
		if c.Items[idx].Product.ID == productID {
			if c.Items[idx].Quantity > 1 {
				c.Items[idx].Quantity--
			} else {
				c.Remove(productID)
			}
			return
		}
	}
}

// TotalItems is the sum of quantities across lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// SubtotalCents is the sum of line totals, exact integer arithmetic.
func (c *Cart) SubtotalCents() int {
	total := 0
	for _, item := range c.Items {
		total += item.TotalCents()
	}
	return total
}

// SubtotalDisplay renders the subtotal in whole currency units.
func (c *Cart) SubtotalDisplay() string {
	return fmt.Sprintf("$%d", c.SubtotalCents()/100)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clear removes all lines.
func (c *Cart) Clear() {
	c.Items = nil
}
