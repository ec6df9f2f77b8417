package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/travel-budget/internal"
	"github.com/frahmantamala/travel-budget/internal/plan"
)

// PlanRepository implements the plan.Repository interface using GORM.
type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) plan.Repository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(p *plan.TravelPlan) error {
	return r.db.Create(p).Error
}

func (r *PlanRepository) GetByID(id string) (*plan.TravelPlan, error) {
	var p plan.TravelPlan
	err := r.db.Where("id = ?", id).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrPlanNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PlanRepository) GetByUserID(userID string) ([]*plan.TravelPlan, error) {
	var plans []*plan.TravelPlan
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (r *PlanRepository) Update(p *plan.TravelPlan) error {
	p.UpdatedAt = time.Now()
	return r.db.Save(p).Error
}

func (r *PlanRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&plan.TravelPlan{}).Error
}
