package postgres

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/frahmantamala/travel-budget/internal"
	"github.com/frahmantamala/travel-budget/internal/plan"
)

func TestPlanRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "PlanRepository Suite")
}

// SQLitePlan mirrors the travel_plans table with the jsonb itinerary column
// stored as text so the repository can run against sqlite in tests.
type SQLitePlan struct {
	ID          string     `gorm:"primaryKey"`
	UserID      string     `gorm:"column:user_id;not null"`
	Destination string     `gorm:"not null"`
	StartDate   *time.Time `gorm:"column:start_date"`
	EndDate     *time.Time `gorm:"column:end_date"`
	Travelers   string     `gorm:"column:travelers"`
	Itinerary   *string    `gorm:"column:itinerary"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (SQLitePlan) TableName() string {
	return "travel_plans"
}

var _ = Describe("PlanRepository", func() {
	var (
		db   *gorm.DB
		repo plan.Repository
	)

	newPlan := func(id, userID, destination string) *plan.TravelPlan {
		return &plan.TravelPlan{
			ID:          id,
			UserID:      userID,
			Destination: destination,
			Travelers:   "2",
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
	}

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLitePlan{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewPlanRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		err = sqlDB.Close()
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Create", func() {
		It("should create a plan and round-trip its itinerary document", func() {
			p := newPlan("plan-1", "user-1", "Istanbul")
			p.Itinerary = &plan.ItineraryDoc{
				Itinerary: map[string]interface{}{"day1": "Hagia Sophia"},
			}

			err := repo.Create(p)
			Expect(err).NotTo(HaveOccurred())

			retrieved, err := repo.GetByID("plan-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.Destination).To(Equal("Istanbul"))
			Expect(retrieved.Itinerary).NotTo(BeNil())
			Expect(retrieved.Itinerary.Itinerary).To(HaveKeyWithValue("day1", "Hagia Sophia"))
		})
	})

	Describe("GetByID", func() {
		It("should return ErrPlanNotFound for an unknown id", func() {
			retrieved, err := repo.GetByID("missing")
			Expect(err).To(Equal(internal.ErrPlanNotFound))
			Expect(retrieved).To(BeNil())
		})
	})

	Describe("GetByUserID", func() {
		It("should list only the user's plans", func() {
			Expect(repo.Create(newPlan("plan-1", "user-1", "Istanbul"))).To(Succeed())
			Expect(repo.Create(newPlan("plan-2", "user-1", "Lisbon"))).To(Succeed())
			Expect(repo.Create(newPlan("plan-3", "user-2", "Tokyo"))).To(Succeed())

			plans, err := repo.GetByUserID("user-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(plans).To(HaveLen(2))
			for _, p := range plans {
				Expect(p.UserID).To(Equal("user-1"))
			}
		})
	})

	Describe("Update", func() {
		It("should persist field changes", func() {
			p := newPlan("plan-1", "user-1", "Istanbul")
			Expect(repo.Create(p)).To(Succeed())

			start := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
			end := start.AddDate(0, 0, 7)
			p.Destination = "Ankara"
			p.StartDate = &start
			p.EndDate = &end
			p.Travelers = "4"

			err := repo.Update(p)
			Expect(err).NotTo(HaveOccurred())

			retrieved, err := repo.GetByID("plan-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.Destination).To(Equal("Ankara"))
			Expect(retrieved.Travelers).To(Equal("4"))
			Expect(retrieved.StartDate).NotTo(BeNil())
			Expect(retrieved.EndDate.After(*retrieved.StartDate)).To(BeTrue())
		})
	})

	Describe("Delete", func() {
		It("should remove the plan", func() {
			Expect(repo.Create(newPlan("plan-1", "user-1", "Istanbul"))).To(Succeed())

			err := repo.Delete("plan-1")
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.GetByID("plan-1")
			Expect(err).To(Equal(internal.ErrPlanNotFound))
		})

		It("should be a no-op for an unknown id", func() {
			Expect(repo.Delete("missing")).To(Succeed())
		})
	})
})
