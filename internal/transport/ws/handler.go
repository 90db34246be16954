// Package ws pushes change notifications to connected SPA clients so
// multiple devices syncing the same warehouse stay current without
// polling.
package ws

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/vrusch/ModSkl/internal/watch"
)

// tokenValidator checks the token handed over in the query string.
// Browsers cannot set an Authorization header on a websocket upgrade.
type tokenValidator interface {
	ValidateToken(token string) (warehouseID, role string, err error)
}

// subscriber registers a callback on the change feed.
type subscriber interface {
	Subscribe(fn func(watch.Event)) func()
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Access is gated by the token, not the origin.
		return true
	},
}

// message is the payload pushed to clients.
type message struct {
	Collection  string `json:"collection"`
	WarehouseID string `json:"warehouseId,omitempty"`
	Action      string `json:"action"`
}

// Handler serves GET /api/v1/ws.
type Handler struct {
	tokens tokenValidator
	feed   subscriber
	log    *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(tokens tokenValidator, feed subscriber, logger *slog.Logger) *Handler {
	return &Handler{tokens: tokens, feed: feed, log: logger.With("handler", "ws")}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	warehouseID, _, err := h.tokens.ValidateToken(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ctx := r.Context()

	// A slow client falls behind rather than blocking the publisher;
	// dropped events only mean a refetch on the next user action.
	events := make(chan watch.Event, 16)
	unsubscribe := h.feed.Subscribe(func(e watch.Event) {
		if e.Collection == watch.CollectionPaints && e.WarehouseID != warehouseID {
			return
		}
		select {
		case events <- e:
		default:
		}
	})
	defer unsubscribe()

	quit := make(chan struct{})

	go func() {
		defer close(quit)
		for {
			// Reads only drive connection teardown; clients send
			// nothing meaningful.
			if _, _, err := conn.ReadMessage(); err != nil {
				if wsErr, ok := err.(*websocket.CloseError); ok {
					if wsErr.Code != websocket.CloseNormalClosure && wsErr.Code != websocket.CloseGoingAway {
						h.log.DebugContext(ctx, "websocket closed",
							slog.String("error", wsErr.Error()))
					}
				}
				return
			}
		}
	}()

	h.log.DebugContext(ctx, "websocket connected", slog.String("warehouse_id", warehouseID))

	for {
		select {
		case <-quit:
			return
		case <-ctx.Done():
			return
		case e := <-events:
			msg := message{
				Collection: string(e.Collection),
				Action:     e.Action,
			}
			if e.Collection == watch.CollectionPaints {
				msg.WarehouseID = e.WarehouseID
			}
			if err := conn.WriteJSON(msg); err != nil {
				h.log.DebugContext(ctx, "websocket write failed",
					slog.String("error", err.Error()))
				return
			}
		}
	}
}
