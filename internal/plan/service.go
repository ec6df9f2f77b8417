package plan

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/travel-budget/internal"
)

type Repository interface {
	Create(plan *TravelPlan) error
	GetByID(id string) (*TravelPlan, error)
	GetByUserID(userID string) ([]*TravelPlan, error)
	Update(plan *TravelPlan) error
	Delete(id string) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) CreatePlan(userID string, dto *CreatePlanDTO) (*TravelPlan, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("plan validation failed", "error", err)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	now := time.Now()
	p := &TravelPlan{
		ID:          uuid.NewString(),
		UserID:      userID,
		Destination: dto.Destination,
		StartDate:   dto.StartDate,
		EndDate:     dto.EndDate,
		Travelers:   dto.Travelers,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if dto.AIResponse != "" {
		doc := ItineraryDoc(*NormalizeAIResponse(dto.AIResponse))
		p.Itinerary = &doc
	}

	if err := s.repo.Create(p); err != nil {
		s.logger.Error("failed to create travel plan", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("travel plan created", "plan_id", p.ID, "destination", p.Destination)
	return p, nil
}

func (s *Service) GetPlan(userID, planID string) (*TravelPlan, error) {
	return s.ownedPlan(userID, planID)
}

func (s *Service) ListPlans(userID string) ([]*TravelPlan, error) {
	plans, err := s.repo.GetByUserID(userID)
	if err != nil {
		s.logger.Error("failed to list travel plans", "error", err, "user_id", userID)
		return nil, err
	}
	return plans, nil
}

func (s *Service) UpdatePlan(userID, planID string, dto *UpdatePlanDTO) (*TravelPlan, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	p, err := s.ownedPlan(userID, planID)
	if err != nil {
		return nil, err
	}

	if dto.Destination != nil {
		p.Destination = *dto.Destination
	}
	if dto.StartDate != nil {
		p.StartDate = dto.StartDate
	}
	if dto.EndDate != nil {
		p.EndDate = dto.EndDate
	}
	if dto.Travelers != nil {
		p.Travelers = *dto.Travelers
	}
	if dto.AIResponse != nil {
		doc := ItineraryDoc(*NormalizeAIResponse(*dto.AIResponse))
		p.Itinerary = &doc
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(p); err != nil {
		s.logger.Error("failed to update travel plan", "error", err, "plan_id", planID)
		return nil, err
	}

	return p, nil
}

func (s *Service) DeletePlan(userID, planID string) error {
	_, err := s.ownedPlan(userID, planID)
	if err != nil {
		if errors.Is(err, internal.ErrPlanNotFound) {
			return nil
		}
		return err
	}

	if err := s.repo.Delete(planID); err != nil {
		s.logger.Error("failed to delete travel plan", "error", err, "plan_id", planID)
		return err
	}

	s.logger.Info("travel plan deleted", "plan_id", planID)
	return nil
}

func (s *Service) ownedPlan(userID, planID string) (*TravelPlan, error) {
	p, err := s.repo.GetByID(planID)
	if err != nil {
		if errors.Is(err, internal.ErrPlanNotFound) {
			return nil, internal.ErrPlanNotFound
		}
		s.logger.Error("failed to fetch travel plan", "error", err, "plan_id", planID)
		return nil, err
	}
	if !p.IsOwnedBy(userID) {
		return nil, internal.ErrUnauthorizedAccess
	}
	return p, nil
}
