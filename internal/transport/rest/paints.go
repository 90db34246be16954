package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/vrusch/ModSkl/internal/domain"
	"github.com/vrusch/ModSkl/internal/resolver"
	"github.com/vrusch/ModSkl/internal/service/inventory"
)

// inventoryService defines the minimal interface needed by PaintHandler.
type inventoryService interface {
	Save(ctx context.Context, input inventory.SaveInput) (*domain.Paint, error)
	ToggleStatus(ctx context.Context, id uuid.UUID) (*domain.Paint, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Find(ctx context.Context, input inventory.FindInput) ([]domain.Paint, int, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Paint, error)
	ResolveDraft(ctx context.Context, input inventory.ResolveInput) (resolver.Result, error)
	Import(ctx context.Context, input inventory.ImportInput) (*inventory.ImportResult, error)
	Export(ctx context.Context) ([]domain.Paint, error)
	ShoppingList(ctx context.Context) (string, error)
}

// PaintHandler serves the inventory REST endpoints.
type PaintHandler struct {
	svc inventoryService
	log *slog.Logger
}

// NewPaintHandler creates a PaintHandler.
func NewPaintHandler(svc inventoryService, logger *slog.Logger) *PaintHandler {
	return &PaintHandler{svc: svc, log: logger.With("handler", "paints")}
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type paintRequest struct {
	Brand   string  `json:"brand"`
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Status  string  `json:"status"`
	Hex     *string `json:"hex,omitempty"`
	Note    *string `json:"note,omitempty"`
	Thinner *string `json:"thinner,omitempty"`
	Ratio   *string `json:"ratio,omitempty"`
}

type paintResponse struct {
	ID        string    `json:"id"`
	Brand     string    `json:"brand"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Hex       *string   `json:"hex,omitempty"`
	Note      *string   `json:"note,omitempty"`
	Thinner   *string   `json:"thinner,omitempty"`
	Ratio     *string   `json:"ratio,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type paintListResponse struct {
	Items []paintResponse `json:"items"`
	Total int             `json:"total"`
}

func toPaintResponse(p *domain.Paint) paintResponse {
	return paintResponse{
		ID:        p.ID.String(),
		Brand:     p.Brand,
		Code:      p.Code,
		Name:      p.Name,
		Type:      p.Type,
		Status:    p.Status.String(),
		Hex:       p.Hex,
		Note:      p.Note,
		Thinner:   p.Thinner,
		Ratio:     p.Ratio,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toPaintResponses(paints []domain.Paint) []paintResponse {
	out := make([]paintResponse, len(paints))
	for i := range paints {
		out[i] = toPaintResponse(&paints[i])
	}
	return out
}

func (r paintRequest) toSaveInput(id uuid.UUID) inventory.SaveInput {
	return inventory.SaveInput{
		ID:      id,
		Brand:   r.Brand,
		Code:    r.Code,
		Name:    r.Name,
		Type:    r.Type,
		Status:  domain.PaintStatus(r.Status),
		Hex:     r.Hex,
		Note:    r.Note,
		Thinner: r.Thinner,
		Ratio:   r.Ratio,
	}
}

// ---------------------------------------------------------------------------
// CRUD
// ---------------------------------------------------------------------------

// List handles GET /api/v1/paints.
func (h *PaintHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := inventory.FindInput{
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}
	if v := q.Get("q"); v != "" {
		input.Search = &v
	}
	if v := q.Get("status"); v != "" {
		status := domain.PaintStatus(v)
		input.Status = &status
	}
	if v := q.Get("type"); v != "" {
		input.Type = &v
	}
	if v := q.Get("limit"); v != "" {
		input.Limit, _ = strconv.Atoi(v)
	}
	if v := q.Get("offset"); v != "" {
		input.Offset, _ = strconv.Atoi(v)
	}

	paints, total, err := h.svc.Find(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, paintListResponse{
		Items: toPaintResponses(paints),
		Total: total,
	})
}

// Get handles GET /api/v1/paints/{id}.
func (h *PaintHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaintResponse(p))
}

// Create handles POST /api/v1/paints.
func (h *PaintHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req paintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.Save(r.Context(), req.toSaveInput(uuid.Nil))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPaintResponse(p))
}

// Update handles PUT /api/v1/paints/{id}.
func (h *PaintHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req paintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.Save(r.Context(), req.toSaveInput(id))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaintResponse(p))
}

// Toggle handles POST /api/v1/paints/{id}/toggle.
func (h *PaintHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.ToggleStatus(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaintResponse(p))
}

// Delete handles DELETE /api/v1/paints/{id}.
func (h *PaintHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} path segment. Writes a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// ---------------------------------------------------------------------------
// Resolution
// ---------------------------------------------------------------------------

type resolveRequest struct {
	Brand     string `json:"brand"`
	Code      string `json:"code"`
	Editing   bool   `json:"editing"`
	Prefilled bool   `json:"prefilled"`
}

type resolveResponse struct {
	Found        bool   `json:"found"`
	AutoFill     bool   `json:"autoFill"`
	Name         string `json:"name,omitempty"`
	Hex          string `json:"hex,omitempty"`
	Type         string `json:"type,omitempty"`
	TypeIsCustom bool   `json:"typeIsCustom,omitempty"`
	CustomType   string `json:"customType,omitempty"`
}

// Resolve handles POST /api/v1/resolve. Called per keystroke by the
// add/edit form.
func (h *PaintHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.ResolveDraft(r.Context(), inventory.ResolveInput{
		Brand:     req.Brand,
		Code:      req.Code,
		Editing:   req.Editing,
		Prefilled: req.Prefilled,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resolveResponse{
		Found:        res.Found,
		AutoFill:     res.AutoFill,
		Name:         res.Name,
		Hex:          res.Hex,
		Type:         res.Type,
		TypeIsCustom: res.TypeIsCustom,
		CustomType:   res.CustomType,
	})
}

// ---------------------------------------------------------------------------
// Import / export
// ---------------------------------------------------------------------------

type importRequest struct {
	Items []paintRequest `json:"items"`
}

type importErrorResponse struct {
	Line   int    `json:"line"`
	Brand  string `json:"brand"`
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

type importResponse struct {
	Imported int                   `json:"imported"`
	Skipped  int                   `json:"skipped"`
	Errors   []importErrorResponse `json:"errors,omitempty"`
}

// Import handles POST /api/v1/import.
func (h *PaintHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]inventory.ImportItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = inventory.ImportItem{
			Brand:   it.Brand,
			Code:    it.Code,
			Name:    it.Name,
			Type:    it.Type,
			Status:  domain.PaintStatus(it.Status),
			Hex:     it.Hex,
			Note:    it.Note,
			Thinner: it.Thinner,
			Ratio:   it.Ratio,
		}
	}

	result, err := h.svc.Import(r.Context(), inventory.ImportInput{Items: items})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := importResponse{Imported: result.Imported, Skipped: result.Skipped}
	for _, e := range result.Errors {
		resp.Errors = append(resp.Errors, importErrorResponse{
			Line:   e.LineNumber,
			Brand:  e.Brand,
			Code:   e.Code,
			Reason: e.Reason,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Export handles GET /api/v1/export.
func (h *PaintHandler) Export(w http.ResponseWriter, r *http.Request) {
	paints, err := h.svc.Export(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="paints.json"`)
	writeJSON(w, http.StatusOK, paintListResponse{
		Items: toPaintResponses(paints),
		Total: len(paints),
	})
}

// ShoppingList handles GET /api/v1/export/shopping-list.
func (h *PaintHandler) ShoppingList(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ShoppingList(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="shopping-list.txt"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(list)) //nolint:errcheck
}
