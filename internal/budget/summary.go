package budget

import (
	"math"
	"sort"
	"time"
)

// ExpenseAmount is the slice of expense facts the aggregator needs: the
// category it hit, the amount already normalized into the budget currency,
// and the local expense date for the timeline.
type ExpenseAmount struct {
	CategoryID string
	Amount     float64
	Date       time.Time
}

// Aggregate fills every category's SpentAmount from the expense set. Amounts
// referencing a category id that no longer resolves are left out of the
// per-category sums; category removal is rejected while expenses reference
// it, so such rows only appear transiently.
func Aggregate(b *Budget, expenses []ExpenseAmount) {
	sums := make(map[string]float64, len(b.Categories))
	for _, e := range expenses {
		sums[e.CategoryID] += e.Amount
	}

	for i := range b.Categories {
		b.Categories[i].SpentAmount = sums[b.Categories[i].ID]
	}
}

// TotalSpent sums the per-category spent amounts.
func TotalSpent(categories []Category) float64 {
	var total float64
	for _, c := range categories {
		total += c.SpentAmount
	}
	return total
}

// Remaining may be negative: being over budget is a meaningful state that is
// flagged, not rejected.
func Remaining(totalBudget, totalSpent float64) float64 {
	return totalBudget - totalSpent
}

// SpendingPercentage is the share of the overall spend one category accounts
// for, rounded to a whole percent. Zero spend yields 0, not NaN.
func SpendingPercentage(spent, totalSpent float64) int {
	if totalSpent == 0 {
		return 0
	}
	return int(math.Round(100 * spent / totalSpent))
}

// UsagePercentage is total spend against the planned ceiling, rounded to a
// whole percent. A zero ceiling yields 0, not NaN.
func UsagePercentage(totalSpent, totalBudget float64) int {
	if totalBudget == 0 {
		return 0
	}
	return int(math.Round(100 * totalSpent / totalBudget))
}

// DailySpend is one day of the spending timeline.
type DailySpend struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// TimelineDays is how many distinct days the timeline view keeps.
const TimelineDays = 7

// DailyTimeline groups expenses by their local calendar day, sorted ascending
// by date, keeping only the most recent distinct days.
func DailyTimeline(expenses []ExpenseAmount, days int) []DailySpend {
	if days <= 0 {
		days = TimelineDays
	}

	byDay := make(map[string]*DailySpend)
	for _, e := range expenses {
		day := e.Date.Format("2006-01-02")
		entry, ok := byDay[day]
		if !ok {
			entry = &DailySpend{Date: day}
			byDay[day] = entry
		}
		entry.Total += e.Amount
		entry.Count++
	}

	timeline := make([]DailySpend, 0, len(byDay))
	for _, entry := range byDay {
		timeline = append(timeline, *entry)
	}

	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Date < timeline[j].Date
	})

	if len(timeline) > days {
		timeline = timeline[len(timeline)-days:]
	}

	return timeline
}
