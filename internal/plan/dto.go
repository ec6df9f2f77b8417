package plan

import (
	"errors"
	"time"
)

type CreatePlanDTO struct {
	Destination string     `json:"destination"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Travelers   string     `json:"travelers,omitempty"`
	AIResponse  string     `json:"ai_response,omitempty"`
}

func (dto *CreatePlanDTO) Validate() error {
	if dto.Destination == "" {
		return errors.New("destination is required")
	}
	if dto.StartDate != nil && dto.EndDate != nil && dto.EndDate.Before(*dto.StartDate) {
		return errors.New("end date must not be before start date")
	}
	return nil
}

type UpdatePlanDTO struct {
	Destination *string    `json:"destination,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Travelers   *string    `json:"travelers,omitempty"`
	AIResponse  *string    `json:"ai_response,omitempty"`
}

func (dto *UpdatePlanDTO) Validate() error {
	if dto.Destination != nil && *dto.Destination == "" {
		return errors.New("destination must not be empty")
	}
	if dto.StartDate != nil && dto.EndDate != nil && dto.EndDate.Before(*dto.StartDate) {
		return errors.New("end date must not be before start date")
	}
	return nil
}
