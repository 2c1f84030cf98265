package models

// BudgetRecord is a single month's budget fetched from the budget service.
// At most one exists per (user, year, month); that uniqueness is enforced
// upstream.
type BudgetRecord struct {
	UserID         string           `json:"user_id"`
	Year           int              `json:"year"`
	Month          int              `json:"month"` // 1-12
	OpeningBalance float64          `json:"opening_balance"`
	Categories     []BudgetCategory `json:"categories"`
}

// BudgetCategory is a planned spending line within a budget. Order within
// BudgetRecord.Categories is the budget's declared order and is preserved
// through budget-vs-actual comparison.
type BudgetCategory struct {
	Name          string  `json:"name"`
	PlannedAmount float64 `json:"planned_amount"`
	Currency      string  `json:"currency"`
}
