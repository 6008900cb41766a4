package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"

	"github.com/helpnearby/backend/internal/chat"
	"github.com/helpnearby/backend/internal/repository"
	"github.com/helpnearby/backend/internal/service"
)

// ChatSocketHandler upgrades GET /api/ws/chat?response_id= to a WebSocket and
// subscribes the connection to the thread's live updates. Polling the message
// list remains the fallback read path.
type ChatSocketHandler struct {
	hub      *chat.Hub
	svc      service.ResponseService
	upgrader websocket.Upgrader
}

// NewChatSocketHandler creates a ChatSocketHandler. Cross-origin upgrades are
// only accepted from frontendURL.
func NewChatSocketHandler(hub *chat.Hub, svc service.ResponseService, frontendURL string) *ChatSocketHandler {
	return &ChatSocketHandler{
		hub: hub,
		svc: svc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origin == frontendURL || frontendURL == "*"
			},
		},
	}
}

// Serve handles the upgrade request.
func (h *ChatSocketHandler) Serve(w http.ResponseWriter, r *http.Request) {
	responseID, err := strconv.Atoi(r.URL.Query().Get("response_id"))
	if err != nil || responseID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_response_id")
		return
	}

	if _, err := h.svc.Get(r.Context(), responseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		slog.Error("chat subscribe failed", "error", err, "response_id", responseID)
		writeError(w, http.StatusInternalServerError, "subscribe_failed")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		slog.Debug("websocket upgrade failed", "error", err)
		return
	}
	h.hub.Subscribe(conn, responseID)
}
