package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"lazshoppe/internal/models"
	"lazshoppe/internal/repository"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrStatusFinal    = errors.New("order status can no longer change")
	ErrCannotCancel   = errors.New("order can only be cancelled while pending or packed")
	ErrAlreadyCurrent = errors.New("order already has that status")
)

// AdminOrder decorates an order with the customer's name for the back
// office list.
type AdminOrder struct {
	models.Order
	CustomerName string `json:"customer_name"`
}

type OrderService interface {
	ListByUser(userID uint) ([]models.Order, error)
	GetForUser(userID, orderID uint) (*models.Order, []models.OrderItem, error)
	Cancel(userID, orderID uint) (*models.Order, error)

	ListAll(search, status string) ([]AdminOrder, error)
	GetWithLines(orderID uint) (*models.Order, []models.OrderItem, error)
	UpdateStatus(orderID uint, status string) (*models.Order, error)
}

type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	profileRepo   repository.ProfileRepository
	notifier      Notifier
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	profileRepo repository.ProfileRepository,
	notifier Notifier,
) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		profileRepo:   profileRepo,
		notifier:      notifier,
	}
}

func (s *orderService) ListByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

func (s *orderService) GetForUser(userID, orderID uint) (*models.Order, []models.OrderItem, error) {
	order, err := s.ownedOrder(userID, orderID)
	if err != nil {
		return nil, nil, err
	}
	lines, err := s.orderItemRepo.GetByOrderID(order.ID)
	if err != nil {
		return nil, nil, err
	}
	return order, lines, nil
}

func (s *orderService) Cancel(userID, orderID uint) (*models.Order, error) {
	order, err := s.ownedOrder(userID, orderID)
	if err != nil {
		return nil, err
	}

	switch models.OrderStatus(order.Status) {
	case models.OrderPending, models.OrderPacked:
	default:
		return nil, ErrCannotCancel
	}

	if err := s.orderRepo.CancelRestock(order); err != nil {
		return nil, err
	}
	order.Status = string(models.OrderCancelled)
	s.notifyStatus(order)
	return order, nil
}

func (s *orderService) ListAll(search, status string) ([]AdminOrder, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	names, err := s.customerNames()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	result := make([]AdminOrder, 0, len(orders))
	for _, order := range orders {
		name := names[order.UserID]
		if status != "" && order.Status != status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(order.OrderNumber), needle) &&
			!strings.Contains(strings.ToLower(name), needle) {
			continue
		}
		result = append(result, AdminOrder{Order: order, CustomerName: name})
	}
	return result, nil
}

func (s *orderService) GetWithLines(orderID uint) (*models.Order, []models.OrderItem, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrOrderNotFound
		}
		return nil, nil, err
	}
	lines, err := s.orderItemRepo.GetByOrderID(order.ID)
	if err != nil {
		return nil, nil, err
	}
	return order, lines, nil
}

func (s *orderService) UpdateStatus(orderID uint, status string) (*models.Order, error) {
	if !models.IsValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.Status == status {
		return nil, ErrAlreadyCurrent
	}

	// Delivered and Cancelled are terminal.
	switch models.OrderStatus(order.Status) {
	case models.OrderDelivered, models.OrderCancelled:
		return nil, ErrStatusFinal
	}

	if models.OrderStatus(status) == models.OrderCancelled {
		if err := s.orderRepo.CancelRestock(order); err != nil {
			return nil, err
		}
	} else if err := s.orderRepo.UpdateStatus(order.ID, models.OrderStatus(status)); err != nil {
		return nil, err
	}

	order.Status = status
	s.notifyStatus(order)
	return order, nil
}

func (s *orderService) ownedOrder(userID, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		// Hide other users' orders entirely.
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) customerNames() (map[uint]string, error) {
	profiles, err := s.profileRepo.GetAll()
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(profiles))
	for _, profile := range profiles {
		names[profile.ID] = profile.FullName
	}
	return names, nil
}

func (s *orderService) notifyStatus(order *models.Order) {
	profile, err := s.profileRepo.GetByID(order.UserID)
	if err != nil || profile.Phone == "" {
		return
	}
	message := fmt.Sprintf("LazShoppe: order %s is now %s.", order.OrderNumber, order.Status)
	if err := s.notifier.SendTextMessage(profile.Phone, message); err != nil {
		log.Printf("Warning: failed to send status update for %s: %v", order.OrderNumber, err)
	}
}
