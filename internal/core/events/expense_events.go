package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeExpenseCreated = "expense.created"
	EventTypeExpenseUpdated = "expense.updated"
	EventTypeExpenseDeleted = "expense.deleted"
)

type ExpenseCreatedEvent struct {
	BaseEvent
	ExpenseID  string  `json:"expense_id"`
	BudgetID   string  `json:"budget_id"`
	CategoryID string  `json:"category_id"`
	UserID     string  `json:"user_id"`
	Amount     float64 `json:"amount"`
}

func NewExpenseCreatedEvent(expenseID, budgetID, categoryID, userID string, amount float64) *ExpenseCreatedEvent {
	return &ExpenseCreatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeExpenseCreated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"expense_id":  expenseID,
				"budget_id":   budgetID,
				"category_id": categoryID,
				"user_id":     userID,
				"amount":      amount,
			},
		},
		ExpenseID:  expenseID,
		BudgetID:   budgetID,
		CategoryID: categoryID,
		UserID:     userID,
		Amount:     amount,
	}
}

type ExpenseUpdatedEvent struct {
	BaseEvent
	ExpenseID          string  `json:"expense_id"`
	BudgetID           string  `json:"budget_id"`
	CategoryID         string  `json:"category_id"`
	PreviousCategoryID string  `json:"previous_category_id"`
	UserID             string  `json:"user_id"`
	Amount             float64 `json:"amount"`
}

func NewExpenseUpdatedEvent(expenseID, budgetID, categoryID, previousCategoryID, userID string, amount float64) *ExpenseUpdatedEvent {
	return &ExpenseUpdatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeExpenseUpdated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"expense_id":           expenseID,
				"budget_id":            budgetID,
				"category_id":          categoryID,
				"previous_category_id": previousCategoryID,
				"user_id":              userID,
				"amount":               amount,
			},
		},
		ExpenseID:          expenseID,
		BudgetID:           budgetID,
		CategoryID:         categoryID,
		PreviousCategoryID: previousCategoryID,
		UserID:             userID,
		Amount:             amount,
	}
}

type ExpenseDeletedEvent struct {
	BaseEvent
	ExpenseID  string  `json:"expense_id"`
	BudgetID   string  `json:"budget_id"`
	CategoryID string  `json:"category_id"`
	UserID     string  `json:"user_id"`
	Amount     float64 `json:"amount"`
}

func NewExpenseDeletedEvent(expenseID, budgetID, categoryID, userID string, amount float64) *ExpenseDeletedEvent {
	return &ExpenseDeletedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeExpenseDeleted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"expense_id":  expenseID,
				"budget_id":   budgetID,
				"category_id": categoryID,
				"user_id":     userID,
				"amount":      amount,
			},
		},
		ExpenseID:  expenseID,
		BudgetID:   budgetID,
		CategoryID: categoryID,
		UserID:     userID,
		Amount:     amount,
	}
}
