package repository

import (
	"lazshoppe/internal/models"

	"gorm.io/gorm"
)

type WishlistRepository interface {
	GetByUser(userID uint) ([]models.Wishlist, error)
	GetByUserAndProduct(userID, productID uint) (*models.Wishlist, error)
	Create(entry *models.Wishlist) error
	Delete(userID, productID uint) error
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) GetByUser(userID uint) ([]models.Wishlist, error) {
	var entries []models.Wishlist
	err := r.db.Preload("Product").Where("user_id = ?", userID).Order("created_at desc").Find(&entries).Error
	return entries, err
}

func (r *wishlistRepository) GetByUserAndProduct(userID, productID uint) (*models.Wishlist, error) {
	var entry models.Wishlist
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *wishlistRepository) Create(entry *models.Wishlist) error {
	return r.db.Create(entry).Error
}

func (r *wishlistRepository) Delete(userID, productID uint) error {
	return r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.Wishlist{}).Error
}
