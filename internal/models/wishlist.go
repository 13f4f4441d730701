package models

import "time"

type Wishlist struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_wishlist_user_product"`
	ProductID uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
	CreatedAt time.Time `json:"created_at"`

	Product Product `json:"product" gorm:"foreignKey:ProductID"`
}

func (Wishlist) TableName() string {
	return "wishlists"
}
