package budget

import (
	"errors"
	"strings"
	"time"
)

type CategoryDTO struct {
	ID              string  `json:"id,omitempty"`
	Name            string  `json:"name" validate:"required"`
	Icon            string  `json:"icon,omitempty"`
	Color           string  `json:"color,omitempty"`
	AllocatedAmount float64 `json:"allocated_amount" validate:"min=0"`
}

func (dto CategoryDTO) Validate() error {
	if strings.TrimSpace(dto.Name) == "" {
		return errors.New("category name is required")
	}
	if dto.AllocatedAmount < 0 {
		return errors.New("allocated amount cannot be negative")
	}
	return nil
}

type CreateBudgetDTO struct {
	TravelPlanID string        `json:"travel_plan_id" validate:"required"`
	TotalBudget  float64       `json:"total_budget" validate:"min=0"`
	Currency     string        `json:"currency" validate:"required,len=3"`
	Categories   []CategoryDTO `json:"categories"`
}

func (dto CreateBudgetDTO) Validate() error {
	if dto.TravelPlanID == "" {
		return errors.New("travel plan id is required")
	}
	if dto.TotalBudget < 0 {
		return errors.New("total budget cannot be negative")
	}
	if len(dto.Currency) != 3 {
		return errors.New("currency must be a 3-letter code")
	}
	seen := make(map[string]bool, len(dto.Categories))
	for _, c := range dto.Categories {
		if err := c.Validate(); err != nil {
			return err
		}
		if c.ID != "" && seen[c.ID] {
			return errors.New("duplicate category id")
		}
		seen[c.ID] = true
	}
	return nil
}

// UpdateBudgetDTO updates the plan, not the spend: totals and category
// allocations. The display currency is immutable once the budget exists;
// changing it would silently invalidate every stored normalized amount.
type UpdateBudgetDTO struct {
	TotalBudget *float64      `json:"total_budget,omitempty"`
	Currency    *string       `json:"currency,omitempty"`
	Categories  []CategoryDTO `json:"categories,omitempty"`
}

func (dto UpdateBudgetDTO) Validate() error {
	if dto.TotalBudget != nil && *dto.TotalBudget < 0 {
		return errors.New("total budget cannot be negative")
	}
	for _, c := range dto.Categories {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type CategoryView struct {
	Category
	Percentage       int    `json:"percentage"`
	Overspent        bool   `json:"overspent"`
	AllocatedDisplay string `json:"allocated_display,omitempty"`
	SpentDisplay     string `json:"spent_display,omitempty"`
}

type BudgetView struct {
	ID                 string         `json:"id"`
	UserID             string         `json:"user_id"`
	TravelPlanID       string         `json:"travel_plan_id"`
	TotalBudget        float64        `json:"total_budget"`
	Currency           string         `json:"currency"`
	Categories         []CategoryView `json:"categories"`
	TotalSpent         float64        `json:"total_spent"`
	Remaining          float64        `json:"remaining"`
	UsagePercentage    int            `json:"usage_percentage"`
	OverBudget         bool           `json:"over_budget"`
	TotalBudgetDisplay string         `json:"total_budget_display,omitempty"`
	TotalSpentDisplay  string         `json:"total_spent_display,omitempty"`
	RemainingDisplay   string         `json:"remaining_display,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

type SummaryView struct {
	BudgetID           string         `json:"budget_id"`
	Currency           string         `json:"currency"`
	TotalBudget        float64        `json:"total_budget"`
	TotalSpent         float64        `json:"total_spent"`
	Remaining          float64        `json:"remaining"`
	UsagePercentage    int            `json:"usage_percentage"`
	OverBudget         bool           `json:"over_budget"`
	TotalBudgetDisplay string         `json:"total_budget_display,omitempty"`
	TotalSpentDisplay  string         `json:"total_spent_display,omitempty"`
	RemainingDisplay   string         `json:"remaining_display,omitempty"`
	Categories         []CategoryView `json:"categories"`
	Timeline           []DailySpend   `json:"timeline"`
}
