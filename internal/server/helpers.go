package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// ErrorResponse is the standard error format for REST API responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteError writes a JSON error response.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// RequireMethod validates the HTTP method and returns true if it matches.
// If it doesn't match, it writes a 405 response and returns false.
func RequireMethod(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	return false
}

// ValidDateParam reports whether value is empty or a well-formed ISO date
// (YYYY-MM-DD, optionally with a time component). Empty is valid since date
// range parameters are optional.
func ValidDateParam(value string) bool {
	if value == "" {
		return true
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

// PathParts splits the URL path remainder after prefix into its segments.
// Returns nil when the path does not start with prefix.
func PathParts(r *http.Request, prefix string) []string {
	path := r.URL.Path
	if !strings.HasPrefix(path, prefix) {
		return nil
	}
	rest := strings.Trim(path[len(prefix):], "/")
	if rest == "" {
		return []string{}
	}
	return strings.Split(rest, "/")
}
