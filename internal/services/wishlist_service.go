package services

import (
	"errors"

	"gorm.io/gorm"

	"lazshoppe/internal/models"
	"lazshoppe/internal/repository"
)

type WishlistService interface {
	List(userID uint) ([]models.Wishlist, error)
	// Toggle adds the product when absent and removes it when present,
	// reporting whether it ended up on the list.
	Toggle(userID, productID uint) (bool, error)
}

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) WishlistService {
	return &wishlistService{wishlistRepo: wishlistRepo, productRepo: productRepo}
}

func (s *wishlistService) List(userID uint) ([]models.Wishlist, error) {
	return s.wishlistRepo.GetByUser(userID)
}

func (s *wishlistService) Toggle(userID, productID uint) (bool, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrProductNotFound
		}
		return false, err
	}

	_, err := s.wishlistRepo.GetByUserAndProduct(userID, productID)
	if err == nil {
		return false, s.wishlistRepo.Delete(userID, productID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	entry := &models.Wishlist{UserID: userID, ProductID: productID}
	return true, s.wishlistRepo.Create(entry)
}
