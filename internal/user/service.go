package user

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/travel-budget/internal"
	"github.com/frahmantamala/travel-budget/internal/auth"
)

type Repository interface {
	Create(u *User) error
	GetByID(userID string) (*User, error)
	GetByEmail(email string) (*User, error)
}

type Service struct {
	repo       Repository
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, bcryptCost int, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *Service) Register(dto *RegisterDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	if existing, err := s.repo.GetByEmail(email); err == nil && existing != nil {
		return nil, internal.NewConflictError("email is already registered", internal.ErrCodeEmailTaken)
	}

	hash, err := auth.HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, err
	}

	homeCurrency := strings.ToUpper(dto.HomeCurrency)
	if homeCurrency == "" {
		homeCurrency = "USD"
	}
	locale := dto.Locale
	if locale == "" {
		locale = "en-US"
	}

	now := time.Now()
	u := &User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         dto.Name,
		PasswordHash: hash,
		HomeCurrency: homeCurrency,
		Locale:       locale,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", email)
		return nil, err
	}

	s.logger.Info("user registered", "user_id", u.ID, "email", u.Email)
	return u, nil
}

func (s *Service) GetByID(userID string) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.NewNotFoundError("user not found", internal.ErrCodeUnauthorizedAccess)
		}
		return nil, err
	}
	return u, nil
}
