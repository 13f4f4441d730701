package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"lazshoppe/internal/models"
	"lazshoppe/internal/repository"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidRole     = errors.New("role must be Customer, Delivery, or Admin")
)

type ProfileService interface {
	Get(userID uint) (*models.Profile, error)
	Update(userID uint, fullName, phone, address string) (*models.Profile, error)

	ListUsers(search, role string) ([]models.Profile, error)
	UpdateRole(userID uint, role string) (*models.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) Get(userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *profileService) Update(userID uint, fullName, phone, address string) (*models.Profile, error) {
	profile, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	profile.FullName = fullName
	profile.Phone = phone
	profile.Address = address
	if err := s.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) ListUsers(search, role string) ([]models.Profile, error) {
	profiles, err := s.profileRepo.GetAll()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	result := make([]models.Profile, 0, len(profiles))
	for _, profile := range profiles {
		if role != "" && profile.Role != role {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(profile.FullName), needle) &&
			!strings.Contains(strings.ToLower(profile.Email), needle) {
			continue
		}
		result = append(result, profile)
	}
	return result, nil
}

func (s *profileService) UpdateRole(userID uint, role string) (*models.Profile, error) {
	if !models.IsValidUserRole(role) {
		return nil, ErrInvalidRole
	}

	profile, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	profile.Role = role
	if err := s.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
