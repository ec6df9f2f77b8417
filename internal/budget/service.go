package budget

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/travel-budget/internal"
)

// Repository defines the data access methods for budgets.
type Repository interface {
	Create(b *Budget) error
	GetByID(id string) (*Budget, error)
	GetByTravelPlanID(travelPlanID string) (*Budget, error)
	GetByUserID(userID string) ([]*Budget, error)
	Update(b *Budget) error
}

// ExpenseSource exposes the authoritative expense facts for a budget. Spend
// totals are always recomputed from this set on read; stored category spend
// is never trusted.
type ExpenseSource interface {
	AmountsByBudget(budgetID string) ([]ExpenseAmount, error)
}

type Service struct {
	repo     Repository
	expenses ExpenseSource
	logger   *slog.Logger
}

func NewService(repo Repository, expenses ExpenseSource, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		expenses: expenses,
		logger:   logger,
	}
}

func (s *Service) CreateBudget(userID string, dto CreateBudgetDTO) (*BudgetView, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("budget validation failed", "error", err, "user_id", userID)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	now := time.Now()
	b := &Budget{
		ID:           uuid.NewString(),
		UserID:       userID,
		TravelPlanID: dto.TravelPlanID,
		TotalBudget:  dto.TotalBudget,
		Currency:     normalizeCurrency(dto.Currency),
		Categories:   categoriesFromDTO(dto.Categories),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(b); err != nil {
		s.logger.Error("failed to create budget", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("budget created",
		"budget_id", b.ID,
		"user_id", userID,
		"travel_plan_id", b.TravelPlanID,
		"currency", b.Currency,
		"categories", len(b.Categories))

	view := s.buildView(b, nil)
	return &view, nil
}

// GetBudget returns the aggregated view: category spend is recomputed from
// the current expense set before anything is returned.
func (s *Service) GetBudget(id, userID string) (*BudgetView, error) {
	b, err := s.ownedBudget(id, userID)
	if err != nil {
		return nil, err
	}

	amounts, err := s.expenses.AmountsByBudget(b.ID)
	if err != nil {
		s.logger.Error("failed to load expense amounts", "error", err, "budget_id", b.ID)
		return nil, err
	}

	view := s.buildView(b, amounts)
	return &view, nil
}

func (s *Service) GetBudgetForPlan(travelPlanID, userID string) (*BudgetView, error) {
	b, err := s.repo.GetByTravelPlanID(travelPlanID)
	if err != nil {
		return nil, err
	}
	return s.GetBudget(b.ID, userID)
}

func (s *Service) ListBudgets(userID string) ([]BudgetView, error) {
	budgets, err := s.repo.GetByUserID(userID)
	if err != nil {
		s.logger.Error("failed to list budgets", "error", err, "user_id", userID)
		return nil, err
	}

	views := make([]BudgetView, 0, len(budgets))
	for _, b := range budgets {
		amounts, err := s.expenses.AmountsByBudget(b.ID)
		if err != nil {
			s.logger.Error("failed to load expense amounts", "error", err, "budget_id", b.ID)
			return nil, err
		}
		views = append(views, s.buildView(b, amounts))
	}

	return views, nil
}

// UpdateBudget edits the plan side of a budget. A category still referenced
// by expenses cannot be removed; the currency cannot change at all.
func (s *Service) UpdateBudget(id, userID string, dto UpdateBudgetDTO) (*BudgetView, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("budget update validation failed", "error", err, "budget_id", id)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	b, err := s.ownedBudget(id, userID)
	if err != nil {
		return nil, err
	}

	if dto.Currency != nil && normalizeCurrency(*dto.Currency) != b.Currency {
		return nil, internal.NewValidationError("budget currency cannot be changed", internal.ErrCodeInvalidCurrency)
	}

	amounts, err := s.expenses.AmountsByBudget(b.ID)
	if err != nil {
		s.logger.Error("failed to load expense amounts", "error", err, "budget_id", b.ID)
		return nil, err
	}

	if dto.Categories != nil {
		next := categoriesFromDTO(dto.Categories)
		if err := s.checkNoOrphanedExpenses(next, amounts); err != nil {
			return nil, err
		}
		b.Categories = next
	}

	if dto.TotalBudget != nil {
		b.TotalBudget = *dto.TotalBudget
	}

	b.UpdatedAt = time.Now()

	if err := s.repo.Update(b); err != nil {
		s.logger.Error("failed to update budget", "error", err, "budget_id", b.ID)
		return nil, err
	}

	s.logger.Info("budget updated", "budget_id", b.ID, "user_id", userID)

	view := s.buildView(b, amounts)
	return &view, nil
}

func (s *Service) GetSummary(id, userID string) (*SummaryView, error) {
	b, err := s.ownedBudget(id, userID)
	if err != nil {
		return nil, err
	}

	amounts, err := s.expenses.AmountsByBudget(b.ID)
	if err != nil {
		s.logger.Error("failed to load expense amounts", "error", err, "budget_id", b.ID)
		return nil, err
	}

	Aggregate(b, amounts)
	totalSpent := TotalSpent(b.Categories)

	return &SummaryView{
		BudgetID:        b.ID,
		Currency:        b.Currency,
		TotalBudget:     b.TotalBudget,
		TotalSpent:      totalSpent,
		Remaining:       Remaining(b.TotalBudget, totalSpent),
		UsagePercentage: UsagePercentage(totalSpent, b.TotalBudget),
		OverBudget:      totalSpent > b.TotalBudget,
		Categories:      categoryViews(b.Categories, totalSpent),
		Timeline:        DailyTimeline(amounts, TimelineDays),
	}, nil
}

func (s *Service) ownedBudget(id, userID string) (*Budget, error) {
	b, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get budget", "error", err, "budget_id", id)
		return nil, internal.ErrBudgetNotFound
	}

	if !b.IsOwnedBy(userID) {
		s.logger.Warn("unauthorized access to budget", "budget_id", id, "user_id", userID, "owner_id", b.UserID)
		return nil, internal.ErrUnauthorizedAccess
	}

	return b, nil
}

// checkNoOrphanedExpenses rejects category edits that would strand recorded
// expenses without a resolvable category.
func (s *Service) checkNoOrphanedExpenses(next CategoryList, amounts []ExpenseAmount) error {
	keep := make(map[string]bool, len(next))
	for _, c := range next {
		keep[c.ID] = true
	}

	for _, a := range amounts {
		if !keep[a.CategoryID] {
			s.logger.Warn("rejected category removal with recorded expenses", "category_id", a.CategoryID)
			return internal.NewConflictError("cannot remove a category that still has expenses", internal.ErrCodeCategoryInUse)
		}
	}

	return nil
}

func (s *Service) buildView(b *Budget, amounts []ExpenseAmount) BudgetView {
	Aggregate(b, amounts)
	totalSpent := TotalSpent(b.Categories)

	return BudgetView{
		ID:              b.ID,
		UserID:          b.UserID,
		TravelPlanID:    b.TravelPlanID,
		TotalBudget:     b.TotalBudget,
		Currency:        b.Currency,
		Categories:      categoryViews(b.Categories, totalSpent),
		TotalSpent:      totalSpent,
		Remaining:       Remaining(b.TotalBudget, totalSpent),
		UsagePercentage: UsagePercentage(totalSpent, b.TotalBudget),
		OverBudget:      totalSpent > b.TotalBudget,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func categoryViews(categories CategoryList, totalSpent float64) []CategoryView {
	views := make([]CategoryView, len(categories))
	for i, c := range categories {
		views[i] = CategoryView{
			Category:   c,
			Percentage: SpendingPercentage(c.SpentAmount, totalSpent),
			Overspent:  c.SpentAmount > c.AllocatedAmount,
		}
	}
	return views
}

func categoriesFromDTO(dtos []CategoryDTO) CategoryList {
	categories := make(CategoryList, len(dtos))
	for i, dto := range dtos {
		id := dto.ID
		if id == "" {
			id = uuid.NewString()
		}
		categories[i] = Category{
			ID:              id,
			Name:            dto.Name,
			Icon:            dto.Icon,
			Color:           dto.Color,
			AllocatedAmount: dto.AllocatedAmount,
		}
	}
	return categories
}

func normalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
