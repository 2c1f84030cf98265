// Package models defines domain types for Finsight
package models

import "time"

// Transaction types as reported by the ledger service.
const (
	TxTypeIncome  = "income"
	TxTypeExpense = "expense"
)

// ValidTransactionType reports whether t is a known transaction type.
func ValidTransactionType(t string) bool {
	return t == TxTypeIncome || t == TxTypeExpense
}

// TransactionRecord is a single ledger entry fetched from the transaction
// service. Records are read-only in this service: Finsight never writes
// transactions, it only aggregates transient copies.
type TransactionRecord struct {
	ID       string  `json:"_id,omitempty"`
	UserID   string  `json:"user_id"`
	Type     string  `json:"type"` // "income" or "expense"
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"` // 3-letter code, never converted
	Category string  `json:"category"`
	Date     string  `json:"date"` // ISO-8601 timestamp string
	Notes    string  `json:"notes,omitempty"`
}

// YearMonth parses the record's date and returns its calendar year and month.
// The ledger emits ISO-8601 dates, with or without a time component.
func (t *TransactionRecord) YearMonth() (int, time.Month, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if ts, err := time.Parse(layout, t.Date); err == nil {
			return ts.Year(), ts.Month(), true
		}
	}
	return 0, 0, false
}
