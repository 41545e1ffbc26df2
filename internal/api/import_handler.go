package api

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aerogest/backoffice/internal/domain/ingestion"
)

// IngestionPipeline is the behavior ImportHandler needs from the pipeline.
type IngestionPipeline interface {
	Ingest(ctx context.Context, batch *ingestion.RawBatch) (*ingestion.Result, error)
}

// ImportHandler serves spreadsheet uploads.
type ImportHandler struct {
	pipeline       IngestionPipeline
	resolver       *ingestion.Resolver
	maxUploadBytes int64
	maxRows        int
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(pipeline IngestionPipeline, maxUploadBytes int64, maxRows int) *ImportHandler {
	return &ImportHandler{
		pipeline:       pipeline,
		resolver:       ingestion.NewResolver(),
		maxUploadBytes: maxUploadBytes,
		maxRows:        maxRows,
	}
}

// Upload ingests an uploaded spreadsheet into the ledger. The multipart field
// is named "file"; .xlsx and .csv are accepted.
func (h *ImportHandler) Upload(w http.ResponseWriter, r *http.Request) {
	batch, ok := h.decodeUpload(w, r)
	if !ok {
		return
	}

	result, err := h.pipeline.Ingest(r.Context(), batch)
	if err != nil {
		failed := len(batch.Rows)
		if result != nil {
			failed = result.FailureCount
		}
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":         "import failed, no rows were committed",
			"failure_count": failed,
		})
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// Analyze decodes an upload without ingesting it, returning the resolved
// header mapping and fuzzy suggestions for headers that did not match. The
// office uses this to fix column names before committing an import.
func (h *ImportHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	batch, ok := h.decodeUpload(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"headers":     batch.Headers,
		"rows":        len(batch.Rows),
		"mapping":     h.resolver.Resolve(batch.Headers),
		"suggestions": h.resolver.Suggest(batch.Headers),
	})
}

func (h *ImportHandler) decodeUpload(w http.ResponseWriter, r *http.Request) (*ingestion.RawBatch, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large", err.Error())
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "invalid multipart request", err.Error())
		return nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field", err.Error())
		return nil, false
	}
	defer file.Close()

	batch, err := h.decodeFile(file, header)
	if err != nil {
		writeError(w, mapDecodeError(err), "failed to decode file", err.Error())
		return nil, false
	}
	return batch, true
}

func (h *ImportHandler) decodeFile(file multipart.File, header *multipart.FileHeader) (*ingestion.RawBatch, error) {
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".xlsx":
		return ingestion.DecodeXLSX(file, h.maxRows)
	case ".csv":
		return ingestion.DecodeCSV(file, h.maxRows)
	default:
		return nil, errors.New("unsupported file type, expected .xlsx or .csv")
	}
}

func mapDecodeError(err error) int {
	switch {
	case errors.Is(err, ingestion.ErrTooManyRows):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ingestion.ErrNoData):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
