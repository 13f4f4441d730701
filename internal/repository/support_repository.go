package repository

import (
	"lazshoppe/internal/models"

	"gorm.io/gorm"
)

type SupportRepository interface {
	Create(request *models.SupportRequest) error
	GetByID(id uint) (*models.SupportRequest, error)
	GetAll() ([]models.SupportRequest, error)
	Update(request *models.SupportRequest) error
}

type supportRepository struct {
	db *gorm.DB
}

func NewSupportRepository(db *gorm.DB) SupportRepository {
	return &supportRepository{db: db}
}

func (r *supportRepository) Create(request *models.SupportRequest) error {
	return r.db.Create(request).Error
}

func (r *supportRepository) GetByID(id uint) (*models.SupportRequest, error) {
	var request models.SupportRequest
	err := r.db.First(&request, id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *supportRepository) GetAll() ([]models.SupportRequest, error) {
	var requests []models.SupportRequest
	err := r.db.Order("created_at desc").Find(&requests).Error
	return requests, err
}

func (r *supportRepository) Update(request *models.SupportRequest) error {
	return r.db.Save(request).Error
}
