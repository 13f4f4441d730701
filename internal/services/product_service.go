package services

import (
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"

	"lazshoppe/internal/models"
	"lazshoppe/internal/repository"
)

type ProductService interface {
	List(search, category string) ([]models.Product, error)
	Get(id uint) (*models.Product, error)
	Categories() ([]string, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

// List applies the storefront filters: a case-insensitive substring match on
// the name and an exact category match.
func (s *productService) List(search, category string) ([]models.Product, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	result := make([]models.Product, 0, len(products))
	for _, product := range products {
		if needle != "" && !strings.Contains(strings.ToLower(product.Name), needle) {
			continue
		}
		if category != "" && product.Category != category {
			continue
		}
		result = append(result, product)
	}
	return result, nil
}

func (s *productService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) Categories() ([]string, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, product := range products {
		if product.Category == "" || seen[product.Category] {
			continue
		}
		seen[product.Category] = true
		categories = append(categories, product.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

func (s *productService) Create(product *models.Product) error {
	return s.productRepo.Create(product)
}

func (s *productService) Update(product *models.Product) error {
	if _, err := s.Get(product.ID); err != nil {
		return err
	}
	return s.productRepo.Update(product)
}

func (s *productService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.productRepo.Delete(id)
}
