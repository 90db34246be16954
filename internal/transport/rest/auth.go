package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vrusch/ModSkl/internal/domain"
)

const maxWarehouseIDLen = 64

// tokenIssuer mints warehouse tokens.
type tokenIssuer interface {
	GenerateToken(warehouseID, role string) (string, error)
}

// AuthHandler serves the token bootstrap endpoint. There are no user
// accounts: a warehouse id is a shared sync key, and knowing it grants
// access to that collection.
type AuthHandler struct {
	issuer tokenIssuer
	log    *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(issuer tokenIssuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{issuer: issuer, log: logger.With("handler", "auth")}
}

type tokenRequest struct {
	WarehouseID string `json:"warehouseId"`
}

type tokenResponse struct {
	Token       string `json:"token"`
	WarehouseID string `json:"warehouseId"`
	Role        string `json:"role"`
}

// Token handles POST /api/v1/auth/token.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	warehouseID := strings.TrimSpace(req.WarehouseID)
	if warehouseID == "" {
		handleError(h.log, w, r, domain.NewValidationError("warehouseId", "required"))
		return
	}
	if len(warehouseID) > maxWarehouseIDLen {
		handleError(h.log, w, r, domain.NewValidationError("warehouseId", "max 64 characters"))
		return
	}

	// The endpoint only ever issues user tokens. Admin tokens are
	// minted out of band for the catalog import tooling.
	role := domain.RoleUser.String()

	token, err := h.issuer.GenerateToken(warehouseID, role)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		Token:       token,
		WarehouseID: warehouseID,
		Role:        role,
	})
}
