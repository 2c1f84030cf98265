package models

// TypeTotals holds the aggregate for one transaction type over a fetch window.
// Total is the face-value sum across all currencies. Finsight never converts
// currencies, so mixed-currency totals are additive as-is and ByCurrency
// carries the per-currency breakdown for display.
type TypeTotals struct {
	Total      float64            `json:"total"`
	ByCurrency map[string]float64 `json:"by_currency"`
	Count      int                `json:"count"`
}

// MonthlySummary is the full analytic view for one calendar month.
type MonthlySummary struct {
	Year             int                    `json:"year"`
	Month            int                    `json:"month"`
	OpeningBalance   float64                `json:"opening_balance"`
	Income           TypeTotals             `json:"income"`
	Expenses         TypeTotals             `json:"expenses"`
	ClosingBalance   float64                `json:"closing_balance"`
	BudgetComparison []BudgetComparisonItem `json:"budget_comparison"`
	TransactionCount int                    `json:"transaction_count"`
}

// BudgetComparisonItem compares planned vs actual spending for one budget
// category. PercentageUsed is rounded to 2 decimal places and is 0 when the
// planned amount is zero or negative.
type BudgetComparisonItem struct {
	Category       string  `json:"category"`
	Planned        float64 `json:"planned"`
	Actual         float64 `json:"actual"`
	Difference     float64 `json:"difference"`
	PercentageUsed float64 `json:"percentage_used"`
	OverBudget     bool    `json:"over_budget"`
	Currency       string  `json:"currency"`
}

// BudgetVsActual is the budget-vs-actual view for one month.
type BudgetVsActual struct {
	Year       int                    `json:"year"`
	Month      int                    `json:"month"`
	Categories []BudgetComparisonItem `json:"categories"`
}

// CategorySummary is the spending-by-category view over a date range.
type CategorySummary struct {
	Categories []CategorySummaryItem `json:"categories"`
}

// CategorySummaryItem aggregates the expenses of a single category.
// Currency is taken from the first expense encountered in the category.
type CategorySummaryItem struct {
	Category     string              `json:"category"`
	Total        float64             `json:"total"`
	Count        int                 `json:"count"`
	Currency     string              `json:"currency"`
	Average      float64             `json:"average"`
	Transactions []TransactionDetail `json:"transactions"`
}

// TransactionDetail is the abbreviated transaction listing carried inside a
// category summary item.
type TransactionDetail struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Notes  string  `json:"notes"`
}

// RealAvailable is the truly-spendable-funds view: the closing balance minus
// money the user has earmarked as savings.
type RealAvailable struct {
	ClosingBalance  float64 `json:"closing_balance"`
	DesignatedSaves float64 `json:"designated_saves"`
	RealAvailable   float64 `json:"real_available"`
}

// TrendPoint is one month's income/expense movement in a spending trend.
type TrendPoint struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// MonthlyTrend is the spending trend view over a date range, one point per
// calendar month in chronological order.
type MonthlyTrend struct {
	Trend []TrendPoint `json:"trend"`
}

// MonthGroup pairs a calendar month with the transactions that fall in it.
// Used as the input shape for trend computation.
type MonthGroup struct {
	Year         int
	Month        int
	Transactions []*TransactionRecord
}
