package budget

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Category is a planned spending bucket inside a budget. Allocations are
// denominated in the owning budget's currency. SpentAmount is derived: it is
// recomputed from the expense set on every read and never trusted from
// storage.
type Category struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Icon            string  `json:"icon,omitempty"`
	Color           string  `json:"color,omitempty"`
	AllocatedAmount float64 `json:"allocated_amount"`
	SpentAmount     float64 `json:"spent_amount"`
}

// CategoryList is stored as a single JSONB column: a budget exclusively owns
// its categories, they are never referenced as standalone rows.
type CategoryList []Category

func (l CategoryList) Value() (driver.Value, error) {
	if l == nil {
		l = CategoryList{}
	}
	return json.Marshal(l)
}

func (l *CategoryList) Scan(value interface{}) error {
	if value == nil {
		*l = CategoryList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for CategoryList", value)
	}

	return json.Unmarshal(data, l)
}

// Budget is the spending plan for one travel plan, denominated in a single
// display currency.
type Budget struct {
	ID           string       `json:"id" gorm:"primaryKey"`
	UserID       string       `json:"user_id" gorm:"column:user_id;not null;index"`
	TravelPlanID string       `json:"travel_plan_id" gorm:"column:travel_plan_id;index"`
	TotalBudget  float64      `json:"total_budget" gorm:"column:total_budget;not null"`
	Currency     string       `json:"currency" gorm:"not null"`
	Categories   CategoryList `json:"categories" gorm:"type:jsonb"`
	CreatedAt    time.Time    `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"column:updated_at"`
}

func (Budget) TableName() string {
	return "budgets"
}

func (b *Budget) IsOwnedBy(userID string) bool {
	return b.UserID == userID
}

func (b *Budget) CategoryByID(id string) (*Category, bool) {
	for i := range b.Categories {
		if b.Categories[i].ID == id {
			return &b.Categories[i], true
		}
	}
	return nil, false
}

func (b *Budget) HasCategory(id string) bool {
	_, ok := b.CategoryByID(id)
	return ok
}
