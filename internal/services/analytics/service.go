package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bobmcallan/finsight/internal/common"
	"github.com/bobmcallan/finsight/internal/interfaces"
	"github.com/bobmcallan/finsight/internal/models"
)

// ErrBudgetNotFound is returned by BudgetVsActual when no budget exists for
// the requested month. MonthlySummary deliberately does NOT share this
// behavior: there a missing budget defaults the opening balance to 0. The
// asymmetry is a product decision carried over from the upstream contract.
var ErrBudgetNotFound = errors.New("no budget found for this month")

// DefaultTTL is the cache lifetime applied when config does not override it.
const DefaultTTL = 5 * time.Minute

// Service implements AnalyticsService: it orchestrates upstream fetches,
// pure reduction, and cache memoization for each analytic view.
type Service struct {
	ledger interfaces.LedgerClient
	budget interfaces.BudgetClient
	cache  interfaces.CacheStore
	ttl    time.Duration
	logger *common.Logger
}

// NewService creates a new analytics service. ttl <= 0 selects DefaultTTL.
func NewService(ledger interfaces.LedgerClient, budget interfaces.BudgetClient, cache interfaces.CacheStore, ttl time.Duration, logger *common.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		ledger: ledger,
		budget: budget,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// monthRange returns the half-open ISO date range [first day of month, first
// day of next month). December rolls over to January of the following year.
func monthRange(year, month int) (string, string) {
	start := fmt.Sprintf("%04d-%02d-01", year, month)
	end := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, 0).
		Format("2006-01-02")
	return start, end
}

// fetchTransactions retrieves transactions, degrading any upstream failure to
// an empty list. Outages show up as zeroed figures, not failed requests.
func (s *Service) fetchTransactions(ctx context.Context, query interfaces.TransactionQuery) []*models.TransactionRecord {
	txns, err := s.ledger.GetTransactions(ctx, common.ResolveToken(ctx), query)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("start_date", query.StartDate).
			Str("end_date", query.EndDate).
			Msg("Transaction fetch failed, continuing with empty ledger")
		return nil
	}
	return txns
}

// fetchBudget retrieves the month's budget, degrading any upstream failure to
// absent. Absence and unreachability are indistinguishable to callers.
func (s *Service) fetchBudget(ctx context.Context, year, month int) *models.BudgetRecord {
	budget, err := s.budget.GetMonthBudget(ctx, common.ResolveToken(ctx), year, month)
	if err != nil {
		s.logger.Warn().Err(err).
			Int("year", year).
			Int("month", month).
			Msg("Budget fetch failed, continuing without budget")
		return nil
	}
	return budget
}

// cached wraps a view computation with the cache-read/compute/cache-write
// protocol. Cache failures are invisible to the caller: a failed read is a
// miss, a failed write is logged and the computed result returned anyway.
// Two racing computations of the same key both write; last write wins, which
// is harmless since the computation is deterministic for identical inputs.
func cached[T any](ctx context.Context, s *Service, key string, compute func() (*T, error)) (*T, error) {
	if data, ok := s.cache.Get(ctx, key); ok {
		var out T
		if err := json.Unmarshal(data, &out); err == nil {
			s.logger.Debug().Str("key", key).Msg("Cache hit")
			return &out, nil
		}
		s.logger.Warn().Str("key", key).Msg("Discarding undecodable cache entry")
	}

	result, err := compute()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("Cache write failed")
		}
	}

	return result, nil
}

// MonthlySummary aggregates one calendar month. A missing budget is lenient:
// opening balance defaults to 0 and the comparison comes back empty.
func (s *Service) MonthlySummary(ctx context.Context, year, month int) (*models.MonthlySummary, error) {
	key := cacheKey(common.ResolveUserID(ctx), "monthly_summary", map[string]string{
		"year":  strconv.Itoa(year),
		"month": strconv.Itoa(month),
	})

	return cached(ctx, s, key, func() (*models.MonthlySummary, error) {
		start, end := monthRange(year, month)
		txns := s.fetchTransactions(ctx, interfaces.TransactionQuery{StartDate: start, EndDate: end})
		budget := s.fetchBudget(ctx, year, month)

		income := SumByType(txns, models.TxTypeIncome)
		expenses := SumByType(txns, models.TxTypeExpense)

		opening := 0.0
		if budget != nil {
			opening = budget.OpeningBalance
		}

		return &models.MonthlySummary{
			Year:             year,
			Month:            month,
			OpeningBalance:   opening,
			Income:           income,
			Expenses:         expenses,
			ClosingBalance:   ClosingBalance(opening, income, expenses),
			BudgetComparison: BudgetVsActual(budget, txns),
			TransactionCount: len(txns),
		}, nil
	})
}

// CategorySummary groups expense spending by category over a date range.
// Either bound may be empty for an open-ended range.
func (s *Service) CategorySummary(ctx context.Context, startDate, endDate string) (*models.CategorySummary, error) {
	key := cacheKey(common.ResolveUserID(ctx), "category_summary", map[string]string{
		"start_date": startDate,
		"end_date":   endDate,
	})

	return cached(ctx, s, key, func() (*models.CategorySummary, error) {
		txns := s.fetchTransactions(ctx, interfaces.TransactionQuery{StartDate: startDate, EndDate: endDate})
		return &models.CategorySummary{Categories: CategorySummary(txns)}, nil
	})
}

// BudgetVsActual compares planned vs actual spending for one month. Unlike
// MonthlySummary this is strict: no budget means ErrBudgetNotFound.
func (s *Service) BudgetVsActual(ctx context.Context, year, month int) (*models.BudgetVsActual, error) {
	key := cacheKey(common.ResolveUserID(ctx), "budget_vs_actual", map[string]string{
		"year":  strconv.Itoa(year),
		"month": strconv.Itoa(month),
	})

	return cached(ctx, s, key, func() (*models.BudgetVsActual, error) {
		budget := s.fetchBudget(ctx, year, month)
		if budget == nil {
			return nil, ErrBudgetNotFound
		}

		start, end := monthRange(year, month)
		txns := s.fetchTransactions(ctx, interfaces.TransactionQuery{StartDate: start, EndDate: end})

		return &models.BudgetVsActual{
			Year:       year,
			Month:      month,
			Categories: BudgetVsActual(budget, txns),
		}, nil
	})
}

// RealAvailable computes closing balance minus designated savings. This view
// is intentionally not cached: it carries a caller-supplied saves figure and
// the upstream contract never memoized it.
func (s *Service) RealAvailable(ctx context.Context, year, month int, saves float64) (*models.RealAvailable, error) {
	start, end := monthRange(year, month)
	txns := s.fetchTransactions(ctx, interfaces.TransactionQuery{StartDate: start, EndDate: end})
	budget := s.fetchBudget(ctx, year, month)

	income := SumByType(txns, models.TxTypeIncome)
	expenses := SumByType(txns, models.TxTypeExpense)

	opening := 0.0
	if budget != nil {
		opening = budget.OpeningBalance
	}
	closing := ClosingBalance(opening, income, expenses)

	return &models.RealAvailable{
		ClosingBalance:  closing,
		DesignatedSaves: saves,
		RealAvailable:   RealAvailable(closing, saves),
	}, nil
}

// MonthlyTrend returns per-month income/expense/net movement over a range.
func (s *Service) MonthlyTrend(ctx context.Context, startDate, endDate string) (*models.MonthlyTrend, error) {
	key := cacheKey(common.ResolveUserID(ctx), "monthly_trend", map[string]string{
		"start_date": startDate,
		"end_date":   endDate,
	})

	return cached(ctx, s, key, func() (*models.MonthlyTrend, error) {
		txns := s.fetchTransactions(ctx, interfaces.TransactionQuery{StartDate: startDate, EndDate: endDate})
		return &models.MonthlyTrend{Trend: MonthlyTrend(GroupByMonth(txns))}, nil
	})
}

// InvalidateCache removes cached analytic results: one user's entries when
// userID is set, every analytics entry otherwise.
func (s *Service) InvalidateCache(ctx context.Context, userID string) error {
	prefix := KeyPrefix
	if userID != "" {
		prefix = userKeyPrefix(userID)
	}
	return s.cache.Invalidate(ctx, prefix)
}

// Ensure Service implements AnalyticsService
var _ interfaces.AnalyticsService = (*Service)(nil)
