package expense

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Expense is a single recorded spend against a budget. Amount is always
// stored normalized into the owning budget's currency; the original pair is
// kept only when a conversion actually happened, for display and audit.
type Expense struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	UserID           string    `json:"user_id" gorm:"column:user_id;not null;index"`
	BudgetID         string    `json:"budget_id" gorm:"column:budget_id;not null;index"`
	CategoryID       string    `json:"category_id" gorm:"column:category_id;not null"`
	Amount           float64   `json:"amount" gorm:"not null"`
	OriginalAmount   *float64  `json:"original_amount,omitempty" gorm:"column:original_amount"`
	OriginalCurrency *string   `json:"original_currency,omitempty" gorm:"column:original_currency"`
	Description      string    `json:"description" gorm:"not null"`
	ExpenseDate      time.Time `json:"expense_date" gorm:"column:expense_date;type:date"`
	Location         *string   `json:"location,omitempty"`
	ReceiptURL       *string   `json:"receipt_url,omitempty" gorm:"column:receipt_url"`
	Tags             TagList   `json:"tags,omitempty" gorm:"type:jsonb"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Expense) TableName() string {
	return "expenses"
}

func (e *Expense) WasConverted() bool {
	return e.OriginalCurrency != nil
}

type TagList []string

func (l TagList) Value() (driver.Value, error) {
	if l == nil {
		l = TagList{}
	}
	return json.Marshal(l)
}

func (l *TagList) Scan(value interface{}) error {
	if value == nil {
		*l = TagList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for TagList", value)
	}

	return json.Unmarshal(data, l)
}
