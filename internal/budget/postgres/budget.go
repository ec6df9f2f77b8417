package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/travel-budget/internal"
	"github.com/frahmantamala/travel-budget/internal/budget"
)

// BudgetRepository implements the budget.Repository interface using GORM.
type BudgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) budget.Repository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) Create(b *budget.Budget) error {
	return r.db.Create(b).Error
}

func (r *BudgetRepository) GetByID(id string) (*budget.Budget, error) {
	var b budget.Budget
	err := r.db.Where("id = ?", id).First(&b).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrBudgetNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BudgetRepository) GetByTravelPlanID(travelPlanID string) (*budget.Budget, error) {
	var b budget.Budget
	err := r.db.Where("travel_plan_id = ?", travelPlanID).
		Order("created_at DESC").
		First(&b).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrBudgetNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BudgetRepository) GetByUserID(userID string) ([]*budget.Budget, error) {
	var budgets []*budget.Budget
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&budgets).Error
	return budgets, err
}

func (r *BudgetRepository) Update(b *budget.Budget) error {
	b.UpdatedAt = time.Now()
	return r.db.Save(b).Error
}
