package budget_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/travel-budget/internal/budget"
)

var _ = Describe("Aggregation", func() {
	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 10, 0, 0, 0, time.UTC)
	}

	Describe("Aggregate", func() {
		It("fills per-category spend from the expense set", func() {
			b := &budget.Budget{
				Categories: budget.CategoryList{
					{ID: "food", Name: "Food", AllocatedAmount: 300},
					{ID: "transport", Name: "Transport", AllocatedAmount: 200},
				},
			}

			budget.Aggregate(b, []budget.ExpenseAmount{
				{CategoryID: "food", Amount: 50},
				{CategoryID: "food", Amount: 30},
				{CategoryID: "transport", Amount: 20},
			})

			Expect(b.Categories[0].SpentAmount).To(Equal(80.0))
			Expect(b.Categories[1].SpentAmount).To(Equal(20.0))
		})

		It("resets stale spend when the expense set is empty", func() {
			b := &budget.Budget{
				Categories: budget.CategoryList{
					{ID: "food", SpentAmount: 999},
				},
			}

			budget.Aggregate(b, nil)

			Expect(b.Categories[0].SpentAmount).To(BeZero())
		})

		It("keeps the total stable when an expense moves between categories", func() {
			b := &budget.Budget{
				Categories: budget.CategoryList{
					{ID: "food"},
					{ID: "transport"},
				},
			}

			budget.Aggregate(b, []budget.ExpenseAmount{{CategoryID: "food", Amount: 75}})
			before := budget.TotalSpent(b.Categories)

			budget.Aggregate(b, []budget.ExpenseAmount{{CategoryID: "transport", Amount: 75}})
			after := budget.TotalSpent(b.Categories)

			Expect(before).To(Equal(after))
			Expect(b.Categories[0].SpentAmount).To(BeZero())
			Expect(b.Categories[1].SpentAmount).To(Equal(75.0))
		})
	})

	Describe("percentages", func() {
		It("rounds to whole percents", func() {
			Expect(budget.SpendingPercentage(1, 3)).To(Equal(33))
			Expect(budget.UsagePercentage(50, 1000)).To(Equal(5))
		})

		It("returns zero on zero denominators", func() {
			Expect(budget.SpendingPercentage(0, 0)).To(BeZero())
			Expect(budget.UsagePercentage(10, 0)).To(BeZero())
		})
	})

	Describe("DailyTimeline", func() {
		It("groups by calendar day and sorts ascending", func() {
			timeline := budget.DailyTimeline([]budget.ExpenseAmount{
				{Amount: 10, Date: day(22)},
				{Amount: 20, Date: day(20)},
				{Amount: 30, Date: day(20)},
			}, budget.TimelineDays)

			Expect(timeline).To(HaveLen(2))
			Expect(timeline[0].Date).To(Equal("2026-08-20"))
			Expect(timeline[0].Total).To(Equal(50.0))
			Expect(timeline[0].Count).To(Equal(2))
			Expect(timeline[1].Date).To(Equal("2026-08-22"))
		})

		It("keeps only the most recent distinct days", func() {
			var amounts []budget.ExpenseAmount
			for d := 1; d <= 10; d++ {
				amounts = append(amounts, budget.ExpenseAmount{Amount: 1, Date: day(d)})
			}

			timeline := budget.DailyTimeline(amounts, budget.TimelineDays)

			Expect(timeline).To(HaveLen(budget.TimelineDays))
			Expect(timeline[0].Date).To(Equal("2026-08-04"))
			Expect(timeline[len(timeline)-1].Date).To(Equal("2026-08-10"))
		})

		It("returns an empty timeline without expenses", func() {
			Expect(budget.DailyTimeline(nil, budget.TimelineDays)).To(BeEmpty())
		})
	})
})
