// Package interfaces defines service contracts for Finsight
package interfaces

import (
	"context"

	"github.com/bobmcallan/finsight/internal/models"
)

// AnalyticsService computes the analytic views. Each operation reads the
// caller's identity and bearer credential from the request context
// (common.UserContext) and memoizes its result in the cache store, except
// RealAvailable which is deliberately uncached.
type AnalyticsService interface {
	// MonthlySummary aggregates one calendar month: income, expenses,
	// closing balance, and budget comparison. A missing budget is not an
	// error; the opening balance defaults to 0.
	MonthlySummary(ctx context.Context, year, month int) (*models.MonthlySummary, error)

	// CategorySummary groups expense spending by category over an optionally
	// open-ended date range.
	CategorySummary(ctx context.Context, startDate, endDate string) (*models.CategorySummary, error)

	// BudgetVsActual compares planned vs actual spending for one month.
	// Returns ErrBudgetNotFound when no budget exists for that month.
	BudgetVsActual(ctx context.Context, year, month int) (*models.BudgetVsActual, error)

	// RealAvailable returns the closing balance minus designated savings.
	RealAvailable(ctx context.Context, year, month int, saves float64) (*models.RealAvailable, error)

	// MonthlyTrend returns per-month income/expense/net movement over an
	// optionally open-ended date range, in chronological order.
	MonthlyTrend(ctx context.Context, startDate, endDate string) (*models.MonthlyTrend, error)

	// InvalidateCache removes cached analytic results: one user's entries
	// when userID is set, every analytics entry otherwise.
	InvalidateCache(ctx context.Context, userID string) error
}
