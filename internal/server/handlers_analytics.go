package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bobmcallan/finsight/internal/services/analytics"
)

// parseYearMonth extracts and validates {year}/{month} path segments.
// Writes a 400 response and returns ok=false on malformed input.
func parseYearMonth(w http.ResponseWriter, r *http.Request, prefix string) (int, int, bool) {
	parts := PathParts(r, prefix)
	if len(parts) != 2 {
		WriteError(w, http.StatusBadRequest, "Expected /{year}/{month} in path")
		return 0, 0, false
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		WriteError(w, http.StatusBadRequest, "Invalid year")
		return 0, 0, false
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		WriteError(w, http.StatusBadRequest, "Invalid month, expected 1-12")
		return 0, 0, false
	}

	return year, month, true
}

// parseDateRange validates optional start_date/end_date query parameters.
func parseDateRange(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if !ValidDateParam(startDate) {
		WriteError(w, http.StatusBadRequest, "Invalid start_date, expected ISO format (YYYY-MM-DD)")
		return "", "", false
	}
	if !ValidDateParam(endDate) {
		WriteError(w, http.StatusBadRequest, "Invalid end_date, expected ISO format (YYYY-MM-DD)")
		return "", "", false
	}
	return startDate, endDate, true
}

// GET /analytics/month/{year}/{month}
func (s *Server) handleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	year, month, ok := parseYearMonth(w, r, "/analytics/month/")
	if !ok {
		return
	}

	summary, err := s.app.Analytics.MonthlySummary(r.Context(), year, month)
	if err != nil {
		s.logger.Error().Err(err).Int("year", year).Int("month", month).Msg("Monthly summary failed")
		WriteError(w, http.StatusInternalServerError, "Failed to generate monthly summary")
		return
	}

	WriteJSON(w, http.StatusOK, summary)
}

// GET /analytics/categories?start_date=&end_date=
func (s *Server) handleCategorySummary(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	startDate, endDate, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	summary, err := s.app.Analytics.CategorySummary(r.Context(), startDate, endDate)
	if err != nil {
		s.logger.Error().Err(err).Msg("Category summary failed")
		WriteError(w, http.StatusInternalServerError, "Failed to generate category summary")
		return
	}

	WriteJSON(w, http.StatusOK, summary)
}

// GET /analytics/budget-vs-actual/{year}/{month}
func (s *Server) handleBudgetVsActual(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	year, month, ok := parseYearMonth(w, r, "/analytics/budget-vs-actual/")
	if !ok {
		return
	}

	comparison, err := s.app.Analytics.BudgetVsActual(r.Context(), year, month)
	if err != nil {
		if errors.Is(err, analytics.ErrBudgetNotFound) {
			WriteError(w, http.StatusNotFound, "No budget found for this month")
			return
		}
		s.logger.Error().Err(err).Int("year", year).Int("month", month).Msg("Budget vs actual failed")
		WriteError(w, http.StatusInternalServerError, "Failed to calculate budget vs actual")
		return
	}

	WriteJSON(w, http.StatusOK, comparison)
}

// GET /analytics/real-available/{year}/{month}?saves=
func (s *Server) handleRealAvailable(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	year, month, ok := parseYearMonth(w, r, "/analytics/real-available/")
	if !ok {
		return
	}

	saves := 0.0
	if raw := r.URL.Query().Get("saves"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid saves, expected a number")
			return
		}
		saves = parsed
	}

	result, err := s.app.Analytics.RealAvailable(r.Context(), year, month, saves)
	if err != nil {
		s.logger.Error().Err(err).Int("year", year).Int("month", month).Msg("Real available failed")
		WriteError(w, http.StatusInternalServerError, "Failed to calculate real available")
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// GET /analytics/trend?start_date=&end_date=
func (s *Server) handleMonthlyTrend(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	startDate, endDate, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	trend, err := s.app.Analytics.MonthlyTrend(r.Context(), startDate, endDate)
	if err != nil {
		s.logger.Error().Err(err).Msg("Monthly trend failed")
		WriteError(w, http.StatusInternalServerError, "Failed to generate monthly trend")
		return
	}

	WriteJSON(w, http.StatusOK, trend)
}

// POST /api/admin/cache/purge?user=
// Purges cached analytics: one user's entries when user is set, all
// otherwise. Writers of ledger or budget data call this to cut staleness
// short of the TTL.
func (s *Server) handleCachePurge(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	userID := r.URL.Query().Get("user")
	if err := s.app.Analytics.InvalidateCache(r.Context(), userID); err != nil {
		s.logger.Error().Err(err).Str("user", userID).Msg("Cache purge failed")
		WriteError(w, http.StatusInternalServerError, "Failed to purge cache")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "purged"})
}
