package plan

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TravelPlan is a user's saved trip with the normalized AI itinerary attached.
type TravelPlan struct {
	ID          string        `json:"id" gorm:"primaryKey"`
	UserID      string        `json:"user_id" gorm:"column:user_id;not null;index"`
	Destination string        `json:"destination" gorm:"not null"`
	StartDate   *time.Time    `json:"start_date,omitempty" gorm:"column:start_date;type:date"`
	EndDate     *time.Time    `json:"end_date,omitempty" gorm:"column:end_date;type:date"`
	Travelers   string        `json:"travelers,omitempty"`
	Itinerary   *ItineraryDoc `json:"itinerary,omitempty" gorm:"type:jsonb"`
	CreatedAt   time.Time     `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time     `json:"updated_at" gorm:"column:updated_at"`
}

func (TravelPlan) TableName() string {
	return "travel_plans"
}

func (p *TravelPlan) IsOwnedBy(userID string) bool {
	return p.UserID == userID
}

// ItineraryDoc stores the normalized AI response as one JSONB column.
type ItineraryDoc NormalizedItinerary

func (d ItineraryDoc) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *ItineraryDoc) Scan(value interface{}) error {
	if value == nil {
		*d = ItineraryDoc{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for ItineraryDoc", value)
	}

	return json.Unmarshal(data, d)
}
