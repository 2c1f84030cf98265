package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bobmcallan/finsight/internal/interfaces"
	"github.com/bobmcallan/finsight/internal/models"
)

func TestGetTransactions(t *testing.T) {
	var gotAuth string
	var gotQuery map[string][]string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transactions/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()

		json.NewEncoder(w).Encode(map[string]interface{}{
			"transactions": []map[string]interface{}{
				{"type": "expense", "amount": 100.0, "currency": "USD", "category": "food", "date": "2024-03-05"},
				{"type": "income", "amount": 500.0, "currency": "USD", "category": "salary", "date": "2024-03-01"},
			},
			"total": 2,
			"limit": 1000,
			"skip":  0,
		})
	}))
	defer ts.Close()

	client := NewClient(WithBaseURL(ts.URL))
	txns, err := client.GetTransactions(context.Background(), "test-token", interfaces.TransactionQuery{
		StartDate: "2024-03-01",
		EndDate:   "2024-04-01",
		Type:      "expense",
	})
	if err != nil {
		t.Fatalf("GetTransactions failed: %v", err)
	}

	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txns))
	}
	if txns[0].Category != "food" || txns[0].Amount != 100 {
		t.Errorf("unexpected first transaction: %+v", txns[0])
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("expected forwarded bearer token, got %q", gotAuth)
	}
	if got := gotQuery["start_date"]; len(got) != 1 || got[0] != "2024-03-01" {
		t.Errorf("unexpected start_date: %v", got)
	}
	if got := gotQuery["end_date"]; len(got) != 1 || got[0] != "2024-04-01" {
		t.Errorf("unexpected end_date: %v", got)
	}
	if got := gotQuery["type"]; len(got) != 1 || got[0] != "expense" {
		t.Errorf("unexpected type: %v", got)
	}
	if got := gotQuery["limit"]; len(got) != 1 || got[0] != "1000" {
		t.Errorf("expected limit=1000, got %v", got)
	}
}

func TestGetTransactionsOmitsEmptyParams(t *testing.T) {
	var gotQuery map[string][]string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]interface{}{"transactions": []interface{}{}})
	}))
	defer ts.Close()

	client := NewClient(WithBaseURL(ts.URL))
	if _, err := client.GetTransactions(context.Background(), "t", interfaces.TransactionQuery{}); err != nil {
		t.Fatalf("GetTransactions failed: %v", err)
	}

	for _, param := range []string{"start_date", "end_date", "type"} {
		if _, present := gotQuery[param]; present {
			t.Errorf("empty %s must not be sent", param)
		}
	}
	if got := gotQuery["limit"]; len(got) != 1 || got[0] != "1000" {
		t.Errorf("limit must always be sent, got %v", got)
	}
}

func TestGetTransactionsTruncatesOversizedResponse(t *testing.T) {
	oversized := make([]*models.TransactionRecord, MaxRecords+50)
	for i := range oversized {
		oversized[i] = &models.TransactionRecord{Type: "expense", Amount: 1, Currency: "USD", Category: "x", Date: "2024-03-01"}
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"transactions": oversized})
	}))
	defer ts.Close()

	client := NewClient(WithBaseURL(ts.URL))
	txns, err := client.GetTransactions(context.Background(), "t", interfaces.TransactionQuery{})
	if err != nil {
		t.Fatalf("GetTransactions failed: %v", err)
	}
	if len(txns) != MaxRecords {
		t.Errorf("expected truncation to %d records, got %d", MaxRecords, len(txns))
	}
}

func TestGetTransactionsUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient(WithBaseURL(ts.URL))
	_, err := client.GetTransactions(context.Background(), "t", interfaces.TransactionQuery{})
	if err == nil {
		t.Fatal("expected error for 500 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", apiErr.StatusCode)
	}
}

func TestGetTransactionsConnectionRefused(t *testing.T) {
	client := NewClient(WithBaseURL("http://127.0.0.1:1"))
	if _, err := client.GetTransactions(context.Background(), "t", interfaces.TransactionQuery{}); err == nil {
		t.Fatal("expected error for unreachable service")
	}
}
