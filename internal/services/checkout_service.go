package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"lazshoppe/internal/models"
	"lazshoppe/internal/repository"
)

var ErrNoItemsSelected = errors.New("no items selected for checkout")

// CheckoutStore keeps the transient selection between the cart page and
// order placement.
type CheckoutStore interface {
	SetSelection(userID uint, productIDs []uint, ttl time.Duration) error
	GetSelection(userID uint) ([]uint, error)
	ClearSelection(userID uint) error
}

// Notifier delivers customer notifications. Sends are best-effort.
type Notifier interface {
	SendTextMessage(phone, message string) error
}

type CheckoutPreview struct {
	Items       []models.CartItem `json:"items"`
	TotalItems  int               `json:"total_items"`
	Subtotal    float64           `json:"subtotal"`
	ShippingFee float64           `json:"shipping_fee"`
	Total       float64           `json:"total"`
}

type CheckoutService interface {
	StartCheckout(userID uint, productIDs []uint) (*CheckoutPreview, error)
	PlaceOrder(userID uint) (*models.Order, []models.OrderItem, error)
}

type checkoutService struct {
	cartRepo     repository.CartRepository
	orderRepo    repository.OrderRepository
	profileRepo  repository.ProfileRepository
	selections   CheckoutStore
	cache        CartCache
	notifier     Notifier
	shippingFee  float64
	selectionTTL time.Duration
}

func NewCheckoutService(
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	profileRepo repository.ProfileRepository,
	selections CheckoutStore,
	cache CartCache,
	notifier Notifier,
	shippingFee float64,
	selectionTTL time.Duration,
) CheckoutService {
	return &checkoutService{
		cartRepo:     cartRepo,
		orderRepo:    orderRepo,
		profileRepo:  profileRepo,
		selections:   selections,
		cache:        cache,
		notifier:     notifier,
		shippingFee:  shippingFee,
		selectionTTL: selectionTTL,
	}
}

func (s *checkoutService) StartCheckout(userID uint, productIDs []uint) (*CheckoutPreview, error) {
	selected, err := s.selectedLines(userID, productIDs)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(selected))
	for _, item := range selected {
		ids = append(ids, item.ProductID)
	}
	if err := s.selections.SetSelection(userID, ids, s.selectionTTL); err != nil {
		return nil, fmt.Errorf("failed to store checkout selection: %w", err)
	}

	return s.preview(selected), nil
}

func (s *checkoutService) PlaceOrder(userID uint) (*models.Order, []models.OrderItem, error) {
	ids, err := s.selections.GetSelection(userID)
	if err != nil {
		return nil, nil, ErrNoItemsSelected
	}

	selected, err := s.selectedLines(userID, ids)
	if err != nil {
		return nil, nil, err
	}

	totalItems, subtotal := CartTotals(selected)
	order := &models.Order{
		OrderNumber: fmt.Sprintf("OGS-%d", time.Now().UnixMilli()),
		Status:      string(models.OrderPending),
		TotalItems:  totalItems,
		Subtotal:    subtotal,
		ShippingFee: s.shippingFee,
		TotalAmount: subtotal + s.shippingFee,
		UserID:      userID,
	}

	lines := make([]models.OrderItem, 0, len(selected))
	for _, item := range selected {
		lines = append(lines, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			UnitPrice:   item.Product.Price,
			Quantity:    item.Quantity,
			LineTotal:   item.Product.Price * float64(item.Quantity),
		})
	}

	// Header, lines, inventory and cart cleanup commit or roll back together.
	if err := s.orderRepo.Place(order, lines); err != nil {
		return nil, nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err := s.selections.ClearSelection(userID); err != nil {
		log.Printf("Warning: failed to clear checkout selection for user %d: %v", userID, err)
	}
	s.refreshCartMirror(userID)
	s.notifyPlaced(userID, order)

	return order, lines, nil
}

// selectedLines returns the cart lines matching the requested ids, or
// ErrNoItemsSelected when the intersection is empty.
func (s *checkoutService) selectedLines(userID uint, productIDs []uint) ([]models.CartItem, error) {
	if len(productIDs) == 0 {
		return nil, ErrNoItemsSelected
	}

	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	wanted := make(map[uint]bool, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = true
	}

	selected := make([]models.CartItem, 0, len(productIDs))
	for _, item := range cart {
		if wanted[item.ProductID] {
			selected = append(selected, item)
		}
	}
	if len(selected) == 0 {
		return nil, ErrNoItemsSelected
	}
	return selected, nil
}

func (s *checkoutService) preview(selected []models.CartItem) *CheckoutPreview {
	totalItems, subtotal := CartTotals(selected)
	return &CheckoutPreview{
		Items:       selected,
		TotalItems:  totalItems,
		Subtotal:    subtotal,
		ShippingFee: s.shippingFee,
		Total:       subtotal + s.shippingFee,
	}
}

func (s *checkoutService) refreshCartMirror(userID uint) {
	items, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		log.Printf("Warning: failed to reload cart for user %d: %v", userID, err)
		return
	}
	if err := s.cache.SetCart(userID, items); err != nil {
		log.Printf("Warning: failed to mirror cart for user %d: %v", userID, err)
	}
}

func (s *checkoutService) notifyPlaced(userID uint, order *models.Order) {
	profile, err := s.profileRepo.GetByID(userID)
	if err != nil || profile.Phone == "" {
		return
	}
	message := fmt.Sprintf("LazShoppe: order %s confirmed. Total ₱%.2f.", order.OrderNumber, order.TotalAmount)
	if err := s.notifier.SendTextMessage(profile.Phone, message); err != nil {
		log.Printf("Warning: failed to send order confirmation for %s: %v", order.OrderNumber, err)
	}
}
