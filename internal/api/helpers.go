package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aerogest/backoffice/internal/domain/ingestion"
	"github.com/aerogest/backoffice/internal/domain/ledger"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message, Message: details})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ingestion.ErrTooManyRows):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ingestion.ErrNoData):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// parseFilter reads the shared ledger filter from query parameters. Dates are
// ISO YYYY-MM-DD; "to" is exclusive.
func parseFilter(r *http.Request) (ledger.Filter, error) {
	var filter ledger.Filter
	q := r.URL.Query()

	if from := q.Get("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return filter, errors.New("invalid 'from' date, expected YYYY-MM-DD")
		}
		filter.From = &t
	}
	if to := q.Get("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return filter, errors.New("invalid 'to' date, expected YYYY-MM-DD")
		}
		filter.To = &t
	}
	if origin := q.Get("origin"); origin != "" {
		o := ledger.Origin(origin)
		if o != ledger.OriginMission && o != ledger.OriginFixed {
			return filter, errors.New("invalid 'origin', expected mission or fixed")
		}
		filter.Origin = &o
	}
	filter.CostCenter = q.Get("cost_center")
	filter.FiscalDocType = q.Get("fiscal_doc_type")
	return filter, nil
}
