package expense

import (
	"errors"
	"time"
)

// CreateExpenseDTO is the request payload for recording an expense. Currency
// is the currency the user entered the amount in; when it differs from the
// budget's currency the amount is normalized before it is stored.
type CreateExpenseDTO struct {
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Currency    string    `json:"currency,omitempty"`
	CategoryID  string    `json:"category_id" validate:"required"`
	Description string    `json:"description" validate:"required,min=1,max=500"`
	ExpenseDate time.Time `json:"expense_date" validate:"required"`
	Location    *string   `json:"location,omitempty"`
	ReceiptURL  *string   `json:"receipt_url,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
}

func (dto CreateExpenseDTO) Validate() error {
	if dto.Amount <= 0 {
		return errors.New("amount must be greater than 0")
	}
	if dto.CategoryID == "" {
		return errors.New("category id is required")
	}
	if dto.Description == "" {
		return errors.New("description is required")
	}
	if len(dto.Description) > 500 {
		return errors.New("description must be less than 500 characters")
	}
	if dto.ExpenseDate.IsZero() {
		return errors.New("expense date is required")
	}
	if len(dto.Currency) != 0 && len(dto.Currency) != 3 {
		return errors.New("currency must be a 3-letter code")
	}
	return nil
}

// UpdateExpenseDTO edits an existing expense. Amount and currency are taken
// together: changing either re-normalizes against the budget currency from
// the entered pair, never by overwriting the stored normalized amount blind.
type UpdateExpenseDTO struct {
	Amount      *float64   `json:"amount,omitempty"`
	Currency    *string    `json:"currency,omitempty"`
	CategoryID  *string    `json:"category_id,omitempty"`
	Description *string    `json:"description,omitempty"`
	ExpenseDate *time.Time `json:"expense_date,omitempty"`
	Location    *string    `json:"location,omitempty"`
	ReceiptURL  *string    `json:"receipt_url,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

func (dto UpdateExpenseDTO) Validate() error {
	if dto.Amount != nil && *dto.Amount <= 0 {
		return errors.New("amount must be greater than 0")
	}
	if dto.CategoryID != nil && *dto.CategoryID == "" {
		return errors.New("category id cannot be empty")
	}
	if dto.Description != nil {
		if *dto.Description == "" {
			return errors.New("description cannot be empty")
		}
		if len(*dto.Description) > 500 {
			return errors.New("description must be less than 500 characters")
		}
	}
	if dto.Currency != nil && len(*dto.Currency) != 3 {
		return errors.New("currency must be a 3-letter code")
	}
	if dto.ExpenseDate != nil && dto.ExpenseDate.IsZero() {
		return errors.New("expense date cannot be empty")
	}
	return nil
}
