package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vrusch/ModSkl/internal/domain"
	"github.com/vrusch/ModSkl/internal/service/catalog"
	"github.com/vrusch/ModSkl/internal/transport/middleware"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	Search(ctx context.Context, query string, limit int) ([]domain.CatalogEntry, error)
	Get(ctx context.Context, brand, code string) (*domain.CatalogEntry, error)
	BulkImport(ctx context.Context, input catalog.BulkImportInput) (*catalog.BulkImportResult, error)
}

// CatalogHandler serves the shared catalog REST endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type catalogEntryResponse struct {
	Brand string `json:"brand"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Hex   string `json:"hex,omitempty"`
}

type catalogListResponse struct {
	Items []catalogEntryResponse `json:"items"`
}

func toCatalogEntryResponse(e *domain.CatalogEntry) catalogEntryResponse {
	return catalogEntryResponse{
		Brand: e.Brand,
		Code:  e.Code,
		Name:  e.Name,
		Type:  e.Type,
		Hex:   e.Hex,
	}
}

// Search handles GET /api/v1/catalog.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if v := q.Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	entries, err := h.svc.Search(r.Context(), q.Get("q"), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := catalogListResponse{Items: make([]catalogEntryResponse, len(entries))}
	for i := range entries {
		resp.Items[i] = toCatalogEntryResponse(&entries[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Lookup handles GET /api/v1/catalog/entry?brand=...&code=...
func (h *CatalogHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	entry, err := h.svc.Get(r.Context(), q.Get("brand"), q.Get("code"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCatalogEntryResponse(entry))
}

type bulkImportRequest struct {
	Entries []catalogEntryResponse `json:"entries"`
}

type bulkImportErrorResponse struct {
	Line   int    `json:"line"`
	Brand  string `json:"brand"`
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

type bulkImportResponse struct {
	Imported int                       `json:"imported"`
	Skipped  int                       `json:"skipped"`
	Errors   []bulkImportErrorResponse `json:"errors,omitempty"`
}

// BulkImport handles POST /api/v1/catalog/import. Admin only; the role
// is checked before the body is decoded, and the service checks again.
func (h *CatalogHandler) BulkImport(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req bulkImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entries := make([]catalog.BulkEntry, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = catalog.BulkEntry{
			Brand: e.Brand,
			Code:  e.Code,
			Name:  e.Name,
			Type:  e.Type,
			Hex:   e.Hex,
		}
	}

	result, err := h.svc.BulkImport(r.Context(), catalog.BulkImportInput{Entries: entries})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := bulkImportResponse{Imported: result.Imported, Skipped: result.Skipped}
	for _, e := range result.Errors {
		resp.Errors = append(resp.Errors, bulkImportErrorResponse{
			Line:   e.LineNumber,
			Brand:  e.Brand,
			Code:   e.Code,
			Reason: e.Reason,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
