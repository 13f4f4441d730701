package repository

import (
	"lazshoppe/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	// Place writes the order header, its lines, the inventory decrement and
	// the purchased cart rows' deletion in a single transaction. A failure
	// anywhere rolls back everything.
	Place(order *models.Order, lines []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetByUser(userID uint) ([]models.Order, error)
	GetAll() ([]models.Order, error)
	GetByStatus(status models.OrderStatus) ([]models.Order, error)
	UpdateStatus(id uint, status models.OrderStatus) error
	// CancelRestock marks the order Cancelled and returns its line
	// quantities to product inventory, in one transaction.
	CancelRestock(order *models.Order) error
	Count() (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Place(order *models.Order, lines []models.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		productIDs := make([]uint, 0, len(lines))
		for i := range lines {
			lines[i].OrderID = order.ID
			productIDs = append(productIDs, lines[i].ProductID)
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}
		for _, line := range lines {
			err := tx.Model(&models.Product{}).Where("id = ?", line.ProductID).
				Update("inventory", gorm.Expr("GREATEST(inventory - ?, 0)", line.Quantity)).Error
			if err != nil {
				return err
			}
		}
		return tx.Where("user_id = ? AND product_id IN ?", order.UserID, productIDs).
			Delete(&models.CartItem{}).Error
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByStatus(status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("status = ?", string(status)).Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(id uint, status models.OrderStatus) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", string(status)).Error
}

func (r *orderRepository) CancelRestock(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var lines []models.OrderItem
		if err := tx.Where("order_id = ?", order.ID).Find(&lines).Error; err != nil {
			return err
		}
		for _, line := range lines {
			err := tx.Model(&models.Product{}).Where("id = ?", line.ProductID).
				Update("inventory", gorm.Expr("inventory + ?", line.Quantity)).Error
			if err != nil {
				return err
			}
		}
		return tx.Model(order).Update("status", string(models.OrderCancelled)).Error
	})
}

func (r *orderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Count(&count).Error
	return count, err
}
