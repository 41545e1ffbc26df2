package api

import (
	"net/http"

	"github.com/aerogest/backoffice/internal/domain/reconciliation"
)

// ReconciliationHandler serves invoice divergence reports.
type ReconciliationHandler struct {
	service *reconciliation.Service
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(service *reconciliation.Service) *ReconciliationHandler {
	return &ReconciliationHandler{service: service}
}

// Report reconciles the filtered records by fiscal document. With
// divergent=true only divergent groups are returned.
func (h *ReconciliationHandler) Report(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	report, err := h.service.Reconcile(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to reconcile invoices", err.Error())
		return
	}

	if r.URL.Query().Get("divergent") == "true" {
		divergent := report.Groups[:0:0]
		for _, g := range report.Groups {
			if g.HasDivergence {
				divergent = append(divergent, g)
			}
		}
		report.Groups = divergent
	}
	writeJSON(w, http.StatusOK, report)
}
