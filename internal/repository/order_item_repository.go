package repository

import (
	"lazshoppe/internal/models"

	"gorm.io/gorm"
)

// Order lines are created inside OrderRepository.Place; this repository only
// reads them back.
type OrderItemRepository interface {
	GetByOrderID(orderID uint) ([]models.OrderItem, error)
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Order("id asc").Find(&items).Error
	return items, err
}
