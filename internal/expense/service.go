package expense

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/travel-budget/internal"
	"github.com/frahmantamala/travel-budget/internal/budget"
	"github.com/frahmantamala/travel-budget/internal/core/events"
)

// Repository defines the data access methods for expenses.
type Repository interface {
	Create(e *Expense) error
	GetByID(id string) (*Expense, error)
	GetByBudgetID(budgetID string, limit, offset int) ([]*Expense, error)
	Update(e *Expense) error
	Delete(id string) error
}

// BudgetReader resolves the owning budget for validation and for the target
// currency of normalization.
type BudgetReader interface {
	GetByID(id string) (*budget.Budget, error)
}

// Converter normalizes an amount into the budget's currency.
type Converter interface {
	Convert(ctx context.Context, amount float64, from, to string) (float64, error)
}

// EventPublisher forwards expense lifecycle events to the in-process bus.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type Service struct {
	repo      Repository
	budgets   BudgetReader
	converter Converter
	publisher EventPublisher
	logger    *slog.Logger
}

func NewService(repo Repository, budgets BudgetReader, converter Converter, publisher EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		budgets:   budgets,
		converter: converter,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateExpense records a spend against a budget category. The entered
// amount is normalized into the budget's currency before anything is stored;
// a conversion that cannot be performed aborts the write.
func (s *Service) CreateExpense(ctx context.Context, userID, budgetID string, dto CreateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("expense validation failed", "error", err, "user_id", userID, "budget_id", budgetID)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	b, err := s.ownedBudget(budgetID, userID)
	if err != nil {
		return nil, err
	}

	if !b.HasCategory(dto.CategoryID) {
		s.logger.Warn("expense references unknown category", "category_id", dto.CategoryID, "budget_id", budgetID)
		return nil, internal.NewValidationError("category does not exist in this budget", internal.ErrCodeInvalidCategory)
	}

	amount, originalAmount, originalCurrency, err := s.normalize(ctx, dto.Amount, dto.Currency, b.Currency)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	e := &Expense{
		ID:               uuid.NewString(),
		UserID:           userID,
		BudgetID:         budgetID,
		CategoryID:       dto.CategoryID,
		Amount:           amount,
		OriginalAmount:   originalAmount,
		OriginalCurrency: originalCurrency,
		Description:      dto.Description,
		ExpenseDate:      dto.ExpenseDate,
		Location:         dto.Location,
		ReceiptURL:       dto.ReceiptURL,
		Tags:             dto.Tags,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(e); err != nil {
		s.logger.Error("failed to create expense", "error", err, "budget_id", budgetID, "user_id", userID)
		return nil, err
	}

	s.logger.Info("expense created",
		"expense_id", e.ID,
		"budget_id", budgetID,
		"category_id", e.CategoryID,
		"amount", e.Amount,
		"converted", e.WasConverted())

	s.publish(ctx, events.NewExpenseCreatedEvent(e.ID, e.BudgetID, e.CategoryID, e.UserID, e.Amount))

	return e, nil
}

// UpdateExpense applies edits with delete-then-add semantics: the normalized
// amount is always rebuilt from the entered amount/currency pair, and a
// category change simply moves the row, which the lazy aggregation picks up
// on the next budget read.
func (s *Service) UpdateExpense(ctx context.Context, userID, expenseID string, dto UpdateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("expense update validation failed", "error", err, "expense_id", expenseID)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	e, err := s.ownedExpense(expenseID, userID)
	if err != nil {
		return nil, err
	}

	b, err := s.budgets.GetByID(e.BudgetID)
	if err != nil {
		s.logger.Error("owning budget missing for expense", "error", err, "expense_id", expenseID, "budget_id", e.BudgetID)
		return nil, internal.ErrBudgetNotFound
	}

	previousCategory := e.CategoryID

	if dto.CategoryID != nil {
		if !b.HasCategory(*dto.CategoryID) {
			s.logger.Warn("expense update references unknown category", "category_id", *dto.CategoryID, "budget_id", b.ID)
			return nil, internal.NewValidationError("category does not exist in this budget", internal.ErrCodeInvalidCategory)
		}
		e.CategoryID = *dto.CategoryID
	}

	if dto.Amount != nil || dto.Currency != nil {
		enteredAmount := e.Amount
		if e.OriginalAmount != nil {
			enteredAmount = *e.OriginalAmount
		}
		if dto.Amount != nil {
			enteredAmount = *dto.Amount
		}

		enteredCurrency := b.Currency
		if e.OriginalCurrency != nil {
			enteredCurrency = *e.OriginalCurrency
		}
		if dto.Currency != nil {
			enteredCurrency = *dto.Currency
		}

		amount, originalAmount, originalCurrency, err := s.normalize(ctx, enteredAmount, enteredCurrency, b.Currency)
		if err != nil {
			return nil, err
		}

		e.Amount = amount
		e.OriginalAmount = originalAmount
		e.OriginalCurrency = originalCurrency
	}

	if dto.Description != nil {
		e.Description = *dto.Description
	}
	if dto.ExpenseDate != nil {
		e.ExpenseDate = *dto.ExpenseDate
	}
	if dto.Location != nil {
		e.Location = dto.Location
	}
	if dto.ReceiptURL != nil {
		e.ReceiptURL = dto.ReceiptURL
	}
	if dto.Tags != nil {
		e.Tags = dto.Tags
	}

	e.UpdatedAt = time.Now()

	if err := s.repo.Update(e); err != nil {
		s.logger.Error("failed to update expense", "error", err, "expense_id", expenseID)
		return nil, err
	}

	s.logger.Info("expense updated",
		"expense_id", e.ID,
		"budget_id", e.BudgetID,
		"category_id", e.CategoryID,
		"previous_category_id", previousCategory,
		"amount", e.Amount)

	s.publish(ctx, events.NewExpenseUpdatedEvent(e.ID, e.BudgetID, e.CategoryID, previousCategory, e.UserID, e.Amount))

	return e, nil
}

// DeleteExpense removes an expense. Deleting an expense that is already gone
// succeeds without touching anything.
func (s *Service) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	e, err := s.repo.GetByID(expenseID)
	if err != nil {
		if errors.Is(err, internal.ErrExpenseNotFound) {
			s.logger.Info("delete of absent expense is a no-op", "expense_id", expenseID)
			return nil
		}
		s.logger.Error("failed to get expense for delete", "error", err, "expense_id", expenseID)
		return err
	}

	if e.UserID != userID {
		s.logger.Warn("unauthorized expense delete", "expense_id", expenseID, "user_id", userID, "owner_id", e.UserID)
		return internal.ErrUnauthorizedAccess
	}

	if err := s.repo.Delete(expenseID); err != nil {
		s.logger.Error("failed to delete expense", "error", err, "expense_id", expenseID)
		return err
	}

	s.logger.Info("expense deleted", "expense_id", expenseID, "budget_id", e.BudgetID, "category_id", e.CategoryID)

	s.publish(ctx, events.NewExpenseDeletedEvent(e.ID, e.BudgetID, e.CategoryID, e.UserID, e.Amount))

	return nil
}

func (s *Service) GetExpense(userID, expenseID string) (*Expense, error) {
	return s.ownedExpense(expenseID, userID)
}

func (s *Service) ListBudgetExpenses(userID, budgetID string, limit, offset int) ([]*Expense, error) {
	if _, err := s.ownedBudget(budgetID, userID); err != nil {
		return nil, err
	}

	expenses, err := s.repo.GetByBudgetID(budgetID, limit, offset)
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err, "budget_id", budgetID)
		return nil, err
	}

	return expenses, nil
}

// normalize converts the entered pair into the budget currency, keeping the
// original pair only when a conversion actually occurred.
func (s *Service) normalize(ctx context.Context, amount float64, from, to string) (float64, *float64, *string, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	if from == "" || from == to {
		return amount, nil, nil, nil
	}

	converted, err := s.converter.Convert(ctx, amount, from, to)
	if err != nil {
		s.logger.Error("currency normalization failed", "error", err, "from", from, "to", to)
		return 0, nil, nil, err
	}

	original := amount
	originalCurrency := from
	return converted, &original, &originalCurrency, nil
}

func (s *Service) ownedBudget(budgetID, userID string) (*budget.Budget, error) {
	b, err := s.budgets.GetByID(budgetID)
	if err != nil {
		s.logger.Error("failed to get budget", "error", err, "budget_id", budgetID)
		return nil, internal.ErrBudgetNotFound
	}

	if !b.IsOwnedBy(userID) {
		s.logger.Warn("unauthorized access to budget", "budget_id", budgetID, "user_id", userID, "owner_id", b.UserID)
		return nil, internal.ErrUnauthorizedAccess
	}

	return b, nil
}

func (s *Service) ownedExpense(expenseID, userID string) (*Expense, error) {
	e, err := s.repo.GetByID(expenseID)
	if err != nil {
		s.logger.Error("failed to get expense", "error", err, "expense_id", expenseID)
		return nil, internal.ErrExpenseNotFound
	}

	if e.UserID != userID {
		s.logger.Warn("unauthorized access to expense", "expense_id", expenseID, "user_id", userID, "owner_id", e.UserID)
		return nil, internal.ErrUnauthorizedAccess
	}

	return e, nil
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish expense event", "error", err, "event_type", event.EventType())
	}
}
