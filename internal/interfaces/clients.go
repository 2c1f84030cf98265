// Package interfaces defines service contracts for Finsight
package interfaces

import (
	"context"

	"github.com/bobmcallan/finsight/internal/models"
)

// TransactionQuery narrows a ledger fetch. Zero-value fields are omitted from
// the upstream request; dates are ISO-8601 (YYYY-MM-DD) strings and ranges
// are half-open on the caller's side of the contract.
type TransactionQuery struct {
	StartDate string
	EndDate   string
	Type      string // "income", "expense", or "" for both
}

// LedgerClient provides read-only access to the transaction service.
// The bearer credential is forwarded per-call: the transaction service
// resolves the user from the token, so no user id travels in the query.
type LedgerClient interface {
	// GetTransactions retrieves transactions matching the query, capped at
	// the service-wide record limit to bound computation cost.
	GetTransactions(ctx context.Context, token string, query TransactionQuery) ([]*models.TransactionRecord, error)
}

// BudgetClient provides read-only access to the budget service.
type BudgetClient interface {
	// GetMonthBudget retrieves the budget for (year, month).
	// Returns (nil, nil) when no budget exists for that month.
	GetMonthBudget(ctx context.Context, token string, year, month int) (*models.BudgetRecord, error)
}
