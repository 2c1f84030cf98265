package models

import (
	"testing"
	"time"
)

func TestValidTransactionType(t *testing.T) {
	if !ValidTransactionType(TxTypeIncome) || !ValidTransactionType(TxTypeExpense) {
		t.Error("income and expense are valid types")
	}
	for _, invalid := range []string{"", "transfer", "Income", "EXPENSE"} {
		if ValidTransactionType(invalid) {
			t.Errorf("%q should not be a valid type", invalid)
		}
	}
}

func TestYearMonth(t *testing.T) {
	cases := []struct {
		date  string
		year  int
		month time.Month
		ok    bool
	}{
		{"2024-03-05", 2024, time.March, true},
		{"2024-03-05T10:30:00Z", 2024, time.March, true},
		{"2024-03-05T10:30:00", 2024, time.March, true},
		{"2023-12-31", 2023, time.December, true},
		{"not-a-date", 0, 0, false},
		{"", 0, 0, false},
		{"03/05/2024", 0, 0, false},
	}

	for _, c := range cases {
		tx := &TransactionRecord{Date: c.date}
		year, month, ok := tx.YearMonth()
		if ok != c.ok {
			t.Errorf("date %q: expected ok=%v, got %v", c.date, c.ok, ok)
			continue
		}
		if ok && (year != c.year || month != c.month) {
			t.Errorf("date %q: expected %d-%d, got %d-%d", c.date, c.year, c.month, year, month)
		}
	}
}
