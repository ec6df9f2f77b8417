package budget_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/travel-budget/internal/budget"
)

var _ = Describe("View localization", func() {
	Describe("BudgetView.Localize", func() {
		It("fills display strings for every amount on the view", func() {
			view := &budget.BudgetView{
				TotalBudget: 1234.5,
				TotalSpent:  200,
				Remaining:   1034.5,
				Currency:    "USD",
				Categories: []budget.CategoryView{
					{Category: budget.Category{Name: "food", AllocatedAmount: 500, SpentAmount: 120}},
				},
			}

			view.Localize("en-US")

			Expect(view.TotalBudgetDisplay).To(ContainSubstring("1,234.50"))
			Expect(view.TotalSpentDisplay).ToNot(BeEmpty())
			Expect(view.RemainingDisplay).To(ContainSubstring("1,034.50"))
			Expect(view.Categories[0].AllocatedDisplay).To(ContainSubstring("500"))
			Expect(view.Categories[0].SpentDisplay).To(ContainSubstring("120"))
		})

		It("leaves the numeric fields untouched", func() {
			view := &budget.BudgetView{TotalBudget: 99.9, Currency: "EUR"}

			view.Localize("de-DE")

			Expect(view.TotalBudget).To(Equal(99.9))
		})

		It("falls back to a plain rendering for an unknown currency code", func() {
			view := &budget.BudgetView{TotalBudget: 12.3, Currency: "???"}

			view.Localize("en-US")

			Expect(view.TotalBudgetDisplay).To(Equal("12.30 ???"))
		})

		It("still formats when the locale is empty or garbage", func() {
			view := &budget.BudgetView{TotalBudget: 50, Currency: "USD"}

			view.Localize("")
			Expect(view.TotalBudgetDisplay).ToNot(BeEmpty())

			view.Localize("not-a-locale")
			Expect(view.TotalBudgetDisplay).ToNot(BeEmpty())
		})
	})

	Describe("SummaryView.Localize", func() {
		It("fills display strings, categories included", func() {
			summary := &budget.SummaryView{
				TotalBudget: 2000,
				TotalSpent:  1500,
				Remaining:   500,
				Currency:    "USD",
				Categories: []budget.CategoryView{
					{Category: budget.Category{Name: "transport", AllocatedAmount: 800, SpentAmount: 750}},
				},
			}

			summary.Localize("en-US")

			Expect(summary.TotalBudgetDisplay).To(ContainSubstring("2,000"))
			Expect(summary.TotalSpentDisplay).To(ContainSubstring("1,500"))
			Expect(summary.RemainingDisplay).To(ContainSubstring("500"))
			Expect(summary.Categories[0].AllocatedDisplay).To(ContainSubstring("800"))
			Expect(summary.Categories[0].SpentDisplay).To(ContainSubstring("750"))
		})
	})
})
