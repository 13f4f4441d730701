package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lazshoppe/internal/models"
	"lazshoppe/internal/repository"
)

var ErrSupportNotFound = errors.New("support request not found")

type SupportService interface {
	Create(name, email, subject, message string) (*models.SupportRequest, error)
	ListAll() ([]models.SupportRequest, error)
	Resolve(id uint) (*models.SupportRequest, error)
}

type supportService struct {
	supportRepo repository.SupportRepository
}

func NewSupportService(supportRepo repository.SupportRepository) SupportService {
	return &supportService{supportRepo: supportRepo}
}

func (s *supportService) Create(name, email, subject, message string) (*models.SupportRequest, error) {
	request := &models.SupportRequest{
		Reference: fmt.Sprintf("SUP-%s", strings.ToUpper(uuid.NewString()[:8])),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		Status:    string(models.SupportOpen),
	}
	if err := s.supportRepo.Create(request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *supportService) ListAll() ([]models.SupportRequest, error) {
	return s.supportRepo.GetAll()
}

func (s *supportService) Resolve(id uint) (*models.SupportRequest, error) {
	request, err := s.supportRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupportNotFound
		}
		return nil, err
	}

	request.Status = string(models.SupportResolved)
	if err := s.supportRepo.Update(request); err != nil {
		return nil, err
	}
	return request, nil
}
