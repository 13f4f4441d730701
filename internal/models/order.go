package models

import "time"

type Order struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OrderNumber string    `json:"order_number" gorm:"unique;not null"`
	Status      string    `json:"status" gorm:"default:'Pending'"` // Pending, Packed, Out for delivery, Delivered, Cancelled
	TotalItems  int       `json:"total_items" gorm:"not null"`
	Subtotal    float64   `json:"subtotal" gorm:"not null"`
	ShippingFee float64   `json:"shipping_fee" gorm:"not null"`
	TotalAmount float64   `json:"total_amount" gorm:"not null"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type OrderStatus string

const (
	OrderPending        OrderStatus = "Pending"
	OrderPacked         OrderStatus = "Packed"
	OrderOutForDelivery OrderStatus = "Out for delivery"
	OrderDelivered      OrderStatus = "Delivered"
	OrderCancelled      OrderStatus = "Cancelled"
)

// OrderStatuses lists every status an order can carry, in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderPending,
	OrderPacked,
	OrderOutForDelivery,
	OrderDelivered,
	OrderCancelled,
}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}
