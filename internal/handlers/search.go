package handlers

import (
	"net/http"
	"strconv"

	"portfolio.dev/internal/analytics"
)

// SearchHandler reports what visitors search for
type SearchHandler struct {
	store SearchStore
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(store SearchStore) *SearchHandler {
	return &SearchHandler{store: store}
}

type topQueriesResponse struct {
	Top         []analytics.QueryCount `json:"top"`
	ZeroResults []analytics.QueryCount `json:"zero_results"`
}

// TopQueries handles GET /api/search/top?limit=
func (h *SearchHandler) TopQueries(w http.ResponseWriter, r *http.Request) {
	limit := clamp(parseIntParam(r, "limit", 10), 1, 100)

	top, err := h.store.TopQueries(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "could not load searches")
		return
	}
	zero, err := h.store.ZeroResultQueries(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "could not load searches")
		return
	}
	respondJSON(w, http.StatusOK, topQueriesResponse{Top: top, ZeroResults: zero})
}

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// clamp limits a value to a range
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
