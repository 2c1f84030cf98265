package budget

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetMonthBudget(t *testing.T) {
	var gotPath, gotAuth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"budget": map[string]interface{}{
				"year":            2024,
				"month":           3,
				"opening_balance": 1000.0,
				"categories": []map[string]interface{}{
					{"name": "food", "planned_amount": 150.0, "currency": "USD"},
				},
			},
		})
	}))
	defer ts.Close()

	client := NewClient(WithBaseURL(ts.URL))
	budget, err := client.GetMonthBudget(context.Background(), "test-token", 2024, 3)
	if err != nil {
		t.Fatalf("GetMonthBudget failed: %v", err)
	}

	if gotPath != "/budgets/month/2024/3" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("expected forwarded bearer token, got %q", gotAuth)
	}

	if budget == nil {
		t.Fatal("expected a budget")
	}
	if budget.OpeningBalance != 1000 {
		t.Errorf("expected opening balance 1000, got %v", budget.OpeningBalance)
	}
	if len(budget.Categories) != 1 || budget.Categories[0].PlannedAmount != 150 {
		t.Errorf("unexpected categories: %+v", budget.Categories)
	}
}

func TestGetMonthBudgetNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer ts.Close()

	client := NewClient(WithBaseURL(ts.URL))
	budget, err := client.GetMonthBudget(context.Background(), "t", 2024, 3)
	if err != nil {
		t.Fatalf("404 must not be an error, got: %v", err)
	}
	if budget != nil {
		t.Errorf("expected nil budget for 404, got %+v", budget)
	}
}

func TestGetMonthBudgetUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer ts.Close()

	client := NewClient(WithBaseURL(ts.URL))
	_, err := client.GetMonthBudget(context.Background(), "t", 2024, 3)
	if err == nil {
		t.Fatal("expected error for 502 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", apiErr.StatusCode)
	}
}

func TestGetMonthBudgetConnectionRefused(t *testing.T) {
	client := NewClient(WithBaseURL("http://127.0.0.1:1"))
	if _, err := client.GetMonthBudget(context.Background(), "t", 2024, 3); err == nil {
		t.Fatal("expected error for unreachable service")
	}
}
