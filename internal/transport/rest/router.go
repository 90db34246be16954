package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Paints    *PaintHandler
	Catalog   *CatalogHandler
	Assistant *AssistantHandler
	Health    *HealthHandler

	// WS is mounted as-is so the websocket upgrade bypasses the JSON
	// response helpers.
	WS http.Handler
}

// NewRouter mounts all REST routes on a fresh ServeMux. Middleware is
// applied by the caller around the returned mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/v1/auth/token", h.Auth.Token)

	mux.HandleFunc("GET /api/v1/paints", h.Paints.List)
	mux.HandleFunc("POST /api/v1/paints", h.Paints.Create)
	mux.HandleFunc("GET /api/v1/paints/{id}", h.Paints.Get)
	mux.HandleFunc("PUT /api/v1/paints/{id}", h.Paints.Update)
	mux.HandleFunc("POST /api/v1/paints/{id}/toggle", h.Paints.Toggle)
	mux.HandleFunc("DELETE /api/v1/paints/{id}", h.Paints.Delete)

	mux.HandleFunc("POST /api/v1/resolve", h.Paints.Resolve)
	mux.HandleFunc("GET /api/v1/export", h.Paints.Export)
	mux.HandleFunc("GET /api/v1/export/shopping-list", h.Paints.ShoppingList)
	mux.HandleFunc("POST /api/v1/import", h.Paints.Import)

	mux.HandleFunc("GET /api/v1/catalog", h.Catalog.Search)
	mux.HandleFunc("GET /api/v1/catalog/entry", h.Catalog.Lookup)
	mux.HandleFunc("POST /api/v1/catalog/import", h.Catalog.BulkImport)

	if h.Assistant != nil {
		mux.HandleFunc("POST /api/v1/assistant/vision", h.Assistant.Recognize)
		mux.HandleFunc("POST /api/v1/assistant/chat", h.Assistant.Chat)
	}

	if h.WS != nil {
		mux.Handle("GET /api/v1/ws", h.WS)
	}

	return mux
}
