package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lazshoppe/internal/models"
	"lazshoppe/internal/redis"
	"lazshoppe/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrSessionNotFound    = errors.New("session not found")
)

// SessionStore resolves bearer tokens for the lifetime of a sign-in.
type SessionStore interface {
	SetSession(token string, data *redis.SessionData, ttl time.Duration) error
	GetSession(token string) (*redis.SessionData, error)
	DeleteSession(token string) error
}

type AuthService interface {
	Register(email, password, fullName, phone string) (*models.Profile, error)
	Login(email, password string) (string, *models.Profile, error)
	Logout(token string) error
	CurrentUser(token string) (*models.Profile, error)
	Session(token string) (*redis.SessionData, error)
}

type authService struct {
	profileRepo repository.ProfileRepository
	sessions    SessionStore
	sessionTTL  time.Duration
}

func NewAuthService(profileRepo repository.ProfileRepository, sessions SessionStore, sessionTTL time.Duration) AuthService {
	return &authService{profileRepo: profileRepo, sessions: sessions, sessionTTL: sessionTTL}
}

func (s *authService) Register(email, password, fullName, phone string) (*models.Profile, error) {
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.profileRepo.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Phone:        phone,
		Role:         string(models.RoleCustomer),
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *authService) Login(email, password string) (string, *models.Profile, error) {
	profile, err := s.profileRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	session := &redis.SessionData{
		UserID:    profile.ID,
		Email:     profile.Email,
		Role:      profile.Role,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.SetSession(token, session, s.sessionTTL); err != nil {
		return "", nil, err
	}

	return token, profile, nil
}

func (s *authService) Logout(token string) error {
	return s.sessions.DeleteSession(token)
}

func (s *authService) CurrentUser(token string) (*models.Profile, error) {
	session, err := s.Session(token)
	if err != nil {
		return nil, err
	}
	return s.profileRepo.GetByID(session.UserID)
}

func (s *authService) Session(token string) (*redis.SessionData, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}
	session, err := s.sessions.GetSession(token)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}
