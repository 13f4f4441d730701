package models

import "time"

// OrderItem is an immutable snapshot of one product line at the time the
// order was placed. Name and unit price are denormalized so later catalog
// edits never rewrite purchase history.
type OrderItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OrderID     uint      `json:"order_id" gorm:"not null;index"`
	ProductID   uint      `json:"product_id" gorm:"not null"`
	ProductName string    `json:"product_name" gorm:"not null"`
	UnitPrice   float64   `json:"unit_price" gorm:"not null"`
	Quantity    int       `json:"quantity" gorm:"not null"`
	LineTotal   float64   `json:"line_total" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
