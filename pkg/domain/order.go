package domain

import (
	"fmt"
	"time"
)

// OrderStatus is the backend-side lifecycle of a placed order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Order is a snapshot of a completed purchase.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Items           []CartItem      `json:"items"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	SubtotalCents   int             `json:"subtotal_cents"`
	ShippingCents   int             `json:"shipping_cents"`
	TotalCents      int             `json:"total_cents"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (o Order) TotalDisplay() string {
	return fmt.Sprintf("$%.2f", float64(o.TotalCents)/100)
}

func (o Order) SubtotalDisplay() string {
	return fmt.Sprintf("$%.2f", float64(o.SubtotalCents)/100)
}

func (o Order) ShippingDisplay() string {
	return fmt.Sprintf("$%.2f", float64(o.ShippingCents)/100)
}

// SubscriptionStatus is the lifecycle of a recurring delivery.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPaused    SubscriptionStatus = "paused"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription is a snapshot of a recurring product delivery.
type Subscription struct {
	ID           string             `json:"id"`
	UserID       string             `json:"user_id"`
	ProductID    string             `json:"product_id"`
	ProductName  string             `json:"product_name"`
	Status       SubscriptionStatus `json:"status"`
	NextDelivery *time.Time         `json:"next_delivery,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}
