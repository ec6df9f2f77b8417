package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/travel-budget/internal"
	"github.com/frahmantamala/travel-budget/internal/budget"
	"github.com/frahmantamala/travel-budget/internal/expense"
)

// ExpenseRepository implements expense.Repository and budget.ExpenseSource
// using GORM: the same table backs both the expense CRUD and the amounts the
// budget aggregator recomputes spend from.
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(e *expense.Expense) error {
	return r.db.Create(e).Error
}

func (r *ExpenseRepository) GetByID(id string) (*expense.Expense, error) {
	var e expense.Expense
	err := r.db.Where("id = ?", id).First(&e).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrExpenseNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) GetByBudgetID(budgetID string, limit, offset int) ([]*expense.Expense, error) {
	var expenses []*expense.Expense
	err := r.db.Where("budget_id = ?", budgetID).
		Order("expense_date DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) Update(e *expense.Expense) error {
	e.UpdatedAt = time.Now()
	return r.db.Save(e).Error
}

func (r *ExpenseRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&expense.Expense{}).Error
}

// AmountsByBudget returns the aggregation facts for every expense of a
// budget, implementing budget.ExpenseSource.
func (r *ExpenseRepository) AmountsByBudget(budgetID string) ([]budget.ExpenseAmount, error) {
	var rows []struct {
		CategoryID  string
		Amount      float64
		ExpenseDate time.Time
	}

	err := r.db.Model(&expense.Expense{}).
		Select("category_id", "amount", "expense_date").
		Where("budget_id = ?", budgetID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	amounts := make([]budget.ExpenseAmount, len(rows))
	for i, row := range rows {
		amounts[i] = budget.ExpenseAmount{
			CategoryID: row.CategoryID,
			Amount:     row.Amount,
			Date:       row.ExpenseDate,
		}
	}

	return amounts, nil
}
