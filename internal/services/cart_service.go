package services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"lazshoppe/internal/models"
	"lazshoppe/internal/repository"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrProductNotFound = errors.New("product not found")
)

// CartCache mirrors the latest cart per user. The database rows stay
// authoritative; mirror failures are logged and never fail the mutation.
type CartCache interface {
	SetCart(userID uint, items []models.CartItem) error
	DeleteCart(userID uint) error
}

type CartService interface {
	GetCart(userID uint) ([]models.CartItem, error)
	AddToCart(userID, productID uint, quantity int) (*models.CartItem, error)
	UpdateQuantity(userID, productID uint, delta int) (*models.CartItem, error)
	RemoveItems(userID uint, productIDs []uint) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	cache       CartCache
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, cache CartCache) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo, cache: cache}
}

func (s *cartService) GetCart(userID uint) ([]models.CartItem, error) {
	items, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	s.refreshMirror(userID, items)
	return items, nil
}

func (s *cartService) AddToCart(userID, productID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	// One entry per product: an existing line absorbs the new quantity.
	item, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		item = &models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			Product:   *product,
		}
		if err := s.cartRepo.Create(item); err != nil {
			return nil, err
		}
		s.mirror(userID)
		return item, nil
	}

	item.Quantity += quantity
	if err := s.cartRepo.Update(item); err != nil {
		return nil, err
	}
	s.mirror(userID)
	return item, nil
}

func (s *cartService) UpdateQuantity(userID, productID uint, delta int) (*models.CartItem, error) {
	item, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	// Quantity is floored at 1; removal is an explicit delete.
	item.Quantity += delta
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if err := s.cartRepo.Update(item); err != nil {
		return nil, err
	}
	s.mirror(userID)
	return item, nil
}

func (s *cartService) RemoveItems(userID uint, productIDs []uint) error {
	if len(productIDs) == 0 {
		return nil
	}
	if err := s.cartRepo.DeleteByProducts(userID, productIDs); err != nil {
		return err
	}
	s.mirror(userID)
	return nil
}

func (s *cartService) mirror(userID uint) {
	items, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		log.Printf("Warning: failed to reload cart for user %d: %v", userID, err)
		return
	}
	s.refreshMirror(userID, items)
}

func (s *cartService) refreshMirror(userID uint, items []models.CartItem) {
	if err := s.cache.SetCart(userID, items); err != nil {
		log.Printf("Warning: failed to mirror cart for user %d: %v", userID, err)
	}
}

// CartTotals sums item counts and peso value over cart lines.
func CartTotals(items []models.CartItem) (totalItems int, totalPrice float64) {
	for _, item := range items {
		totalItems += item.Quantity
		totalPrice += item.Product.Price * float64(item.Quantity)
	}
	return totalItems, totalPrice
}
