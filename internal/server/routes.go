package server

import (
	"net/http"
	"time"

	"github.com/bobmcallan/finsight/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Analytics views
	mux.HandleFunc("/analytics/month/", s.handleMonthlySummary)
	mux.HandleFunc("/analytics/categories", s.handleCategorySummary)
	mux.HandleFunc("/analytics/budget-vs-actual/", s.handleBudgetVsActual)
	mux.HandleFunc("/analytics/real-available/", s.handleRealAvailable)
	mux.HandleFunc("/analytics/trend", s.handleMonthlyTrend)

	// Admin cache invalidation
	mux.HandleFunc("/api/admin/cache/purge", s.handleCachePurge)
}

// handleHealth responds to GET/HEAD with service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "finsight",
	})
}

// handleVersion responds with build metadata.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
		"uptime":  time.Since(s.app.StartupTime).Round(time.Second).String(),
	})
}
