package api

import (
	"net/http"
	"strconv"

	"github.com/aerogest/backoffice/internal/domain/analytics"
)

// AnalyticsHandler serves the aggregation views.
type AnalyticsHandler struct {
	service *analytics.Service
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// MonthlySpend returns the YYYY-MM payment series.
func (h *AnalyticsHandler) MonthlySpend(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	series, err := h.service.MonthlySpend(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute monthly spend", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, series)
}

// WeeklySpend returns the ISO-week payment series.
func (h *AnalyticsHandler) WeeklySpend(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	series, err := h.service.WeeklySpend(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute weekly spend", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, series)
}

// RollingSpend returns the monthly series with a trailing mean. The window
// defaults to three months.
func (h *AnalyticsHandler) RollingSpend(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	window := 3
	if raw := r.URL.Query().Get("window"); raw != "" {
		window, err = strconv.Atoi(raw)
		if err != nil || window < 1 {
			writeError(w, http.StatusBadRequest, "invalid window", "expected a positive integer")
			return
		}
	}

	points, err := h.service.RollingSpend(r.Context(), filter, window)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute rolling average", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"window": window, "points": points})
}

// MonthlyDeltas returns the month-over-month report.
func (h *AnalyticsHandler) MonthlyDeltas(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	deltas, err := h.service.MonthlyDeltas(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute deltas", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"months": deltas})
}

// Fleet returns the commercial-versus-private comparison.
func (h *AnalyticsHandler) Fleet(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	report, err := h.service.Fleet(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute fleet comparison", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// CostCenters returns the cost-center rollup.
func (h *AnalyticsHandler) CostCenters(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	rollup, err := h.service.CostCenters(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute rollup", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cost_centers": rollup})
}
