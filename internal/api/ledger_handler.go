package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aerogest/backoffice/internal/domain/ledger"
)

// LedgerHandler serves manual ledger maintenance and export.
type LedgerHandler struct {
	service  *ledger.Service
	exporter Exporter
}

// Exporter renders ledger records as downloadable spreadsheets.
type Exporter interface {
	WriteCSV(w io.Writer, records []ledger.Record) error
	WriteXLSX(w io.Writer, records []ledger.Record) error
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(service *ledger.Service, exporter Exporter) *LedgerHandler {
	return &LedgerHandler{service: service, exporter: exporter}
}

// List returns the records matching the filter query.
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	records, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list records", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"records": records,
		"total":   len(records),
	})
}

// Get returns one record.
func (h *LedgerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record id", err.Error())
		return
	}

	record, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get record", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// Create persists a manually entered record.
func (h *LedgerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var record ledger.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	created, err := h.service.Create(r.Context(), &record)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to create record", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update replaces a record whole.
func (h *LedgerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record id", err.Error())
		return
	}

	var record ledger.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	record.ID = id

	if err := h.service.Update(r.Context(), &record); err != nil {
		writeError(w, mapDomainError(err), "failed to update record", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// Delete removes a record.
func (h *LedgerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record id", err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete record", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export streams the filtered records as a CSV or XLSX download.
func (h *LedgerHandler) Export(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	records, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list records", err.Error())
		return
	}

	switch r.URL.Query().Get("format") {
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="lancamentos.xlsx"`)
		if err := h.exporter.WriteXLSX(w, records); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to export records", err.Error())
		}
	case "", "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="lancamentos.csv"`)
		if err := h.exporter.WriteCSV(w, records); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to export records", err.Error())
		}
	default:
		writeError(w, http.StatusBadRequest, "invalid format", "expected csv or xlsx")
	}
}
