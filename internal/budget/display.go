package budget

import "github.com/frahmantamala/travel-budget/internal/currency"

// Localize fills the display strings on the view with amounts formatted
// for the viewer's locale. Numeric fields are never modified. An empty
// or unparseable locale falls back to English formatting.
func (v *BudgetView) Localize(locale string) {
	v.TotalBudgetDisplay = currency.Format(v.TotalBudget, v.Currency, locale)
	v.TotalSpentDisplay = currency.Format(v.TotalSpent, v.Currency, locale)
	v.RemainingDisplay = currency.Format(v.Remaining, v.Currency, locale)
	localizeCategories(v.Categories, v.Currency, locale)
}

// Localize fills the display strings on the summary for the viewer's locale.
func (s *SummaryView) Localize(locale string) {
	s.TotalBudgetDisplay = currency.Format(s.TotalBudget, s.Currency, locale)
	s.TotalSpentDisplay = currency.Format(s.TotalSpent, s.Currency, locale)
	s.RemainingDisplay = currency.Format(s.Remaining, s.Currency, locale)
	localizeCategories(s.Categories, s.Currency, locale)
}

func localizeCategories(categories []CategoryView, code, locale string) {
	for i := range categories {
		categories[i].AllocatedDisplay = currency.Format(categories[i].AllocatedAmount, code, locale)
		categories[i].SpentDisplay = currency.Format(categories[i].SpentAmount, code, locale)
	}
}
