package services

import (
	"log"
	"time"

	"lazshoppe/internal/models"
	"lazshoppe/internal/repository"
)

const dashboardCacheKey = "dashboard_summary"
const dashboardCacheTTL = time.Minute

// TempCache holds short-lived computed values under string keys.
type TempCache interface {
	SetTempData(key string, value interface{}, ttl time.Duration) error
	GetTempData(key string, dest interface{}) error
}

type DashboardSummary struct {
	Products      int64          `json:"products"`
	Orders        int64          `json:"orders"`
	Users         int64          `json:"users"`
	PendingOrders []models.Order `json:"pending_orders"`
}

type DashboardService interface {
	Summary() (*DashboardSummary, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	profileRepo repository.ProfileRepository
	cache       TempCache
}

func NewDashboardService(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	profileRepo repository.ProfileRepository,
	cache TempCache,
) DashboardService {
	return &dashboardService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		profileRepo: profileRepo,
		cache:       cache,
	}
}

func (s *dashboardService) Summary() (*DashboardSummary, error) {
	var cached DashboardSummary
	if err := s.cache.GetTempData(dashboardCacheKey, &cached); err == nil {
		return &cached, nil
	}

	products, err := s.productRepo.Count()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.Count()
	if err != nil {
		return nil, err
	}
	users, err := s.profileRepo.Count()
	if err != nil {
		return nil, err
	}
	pending, err := s.orderRepo.GetByStatus(models.OrderPending)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		Products:      products,
		Orders:        orders,
		Users:         users,
		PendingOrders: pending,
	}
	if err := s.cache.SetTempData(dashboardCacheKey, summary, dashboardCacheTTL); err != nil {
		log.Printf("Warning: failed to cache dashboard summary: %v", err)
	}
	return summary, nil
}
