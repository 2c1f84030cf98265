// Package analytics computes the analytic views from ledger and budget data
package analytics

import (
	"math"
	"sort"

	"github.com/bobmcallan/finsight/internal/models"
)

// The reducers in this file are pure: no network, no storage, no clock.
// Empty input yields zero totals and empty groupings, never an error.
// Amounts are accepted as-is; validation happens upstream.

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SumByType filters transactions to the given type and accumulates amounts
// per currency. Total is the face-value sum of all currency subtotals;
// currency-aware display is the caller's concern, no conversion happens here.
func SumByType(txns []*models.TransactionRecord, typ string) models.TypeTotals {
	totals := models.TypeTotals{ByCurrency: make(map[string]float64)}
	for _, t := range txns {
		if t.Type != typ {
			continue
		}
		totals.ByCurrency[t.Currency] += t.Amount
		totals.Count++
	}
	for _, subtotal := range totals.ByCurrency {
		totals.Total += subtotal
	}
	return totals
}

// ClosingBalance derives the end-of-month balance from the opening balance
// and the month's net movement.
func ClosingBalance(opening float64, income, expenses models.TypeTotals) float64 {
	return opening + income.Total - expenses.Total
}

// RealAvailable is the closing balance minus money earmarked as savings.
func RealAvailable(closing, saves float64) float64 {
	return closing - saves
}

// BudgetVsActual compares planned vs actual spending per budget category.
// Iteration follows the budget's declared category order; category names
// match case-sensitively. Expense categories absent from the budget are
// excluded here; they surface through CategorySummary instead. A nil budget
// yields an empty comparison.
func BudgetVsActual(budget *models.BudgetRecord, txns []*models.TransactionRecord) []models.BudgetComparisonItem {
	comparison := []models.BudgetComparisonItem{}
	if budget == nil {
		return comparison
	}

	actualByCategory := make(map[string]float64)
	for _, t := range txns {
		if t.Type != models.TxTypeExpense {
			continue
		}
		actualByCategory[t.Category] += t.Amount
	}

	for _, cat := range budget.Categories {
		planned := cat.PlannedAmount
		actual := actualByCategory[cat.Name]

		// planned <= 0 means "no budget to measure against", not a numeric error
		percentage := 0.0
		if planned > 0 {
			percentage = round2(actual / planned * 100)
		}

		comparison = append(comparison, models.BudgetComparisonItem{
			Category:       cat.Name,
			Planned:        planned,
			Actual:         actual,
			Difference:     planned - actual,
			PercentageUsed: percentage,
			OverBudget:     actual > planned,
			Currency:       cat.Currency,
		})
	}

	return comparison
}

// CategorySummary groups expenses by category name. Currency is taken from
// the first expense encountered in each category; the result is sorted
// descending by total with ties keeping their first-seen order.
func CategorySummary(txns []*models.TransactionRecord) []models.CategorySummaryItem {
	index := make(map[string]int)
	items := []models.CategorySummaryItem{}

	for _, t := range txns {
		if t.Type != models.TxTypeExpense {
			continue
		}

		i, seen := index[t.Category]
		if !seen {
			i = len(items)
			index[t.Category] = i
			items = append(items, models.CategorySummaryItem{
				Category: t.Category,
				Currency: t.Currency,
			})
		}

		items[i].Total += t.Amount
		items[i].Count++
		items[i].Transactions = append(items[i].Transactions, models.TransactionDetail{
			Date:   t.Date,
			Amount: t.Amount,
			Notes:  t.Notes,
		})
	}

	for i := range items {
		items[i].Average = round2(items[i].Total / float64(items[i].Count))
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Total > items[b].Total
	})

	return items
}

// MonthlyTrend reduces per-month transaction groups to income/expense/net
// points, preserving input order.
func MonthlyTrend(groups []models.MonthGroup) []models.TrendPoint {
	trend := []models.TrendPoint{}
	for _, g := range groups {
		income := SumByType(g.Transactions, models.TxTypeIncome)
		expenses := SumByType(g.Transactions, models.TxTypeExpense)
		trend = append(trend, models.TrendPoint{
			Year:     g.Year,
			Month:    g.Month,
			Income:   income.Total,
			Expenses: expenses.Total,
			Net:      income.Total - expenses.Total,
		})
	}
	return trend
}

// GroupByMonth buckets transactions by calendar month in chronological order.
// Records whose date cannot be parsed are skipped.
func GroupByMonth(txns []*models.TransactionRecord) []models.MonthGroup {
	buckets := make(map[int]*models.MonthGroup)
	var keys []int

	for _, t := range txns {
		year, month, ok := t.YearMonth()
		if !ok {
			continue
		}
		key := year*100 + int(month)
		g, exists := buckets[key]
		if !exists {
			g = &models.MonthGroup{Year: year, Month: int(month)}
			buckets[key] = g
			keys = append(keys, key)
		}
		g.Transactions = append(g.Transactions, t)
	}

	sort.Ints(keys)

	groups := make([]models.MonthGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, *buckets[key])
	}
	return groups
}
