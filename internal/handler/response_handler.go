package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/helpnearby/backend/internal/model"
	"github.com/helpnearby/backend/internal/repository"
	"github.com/helpnearby/backend/internal/service"
)

// ResponseHandler handles responses to announcements and their chat threads.
type ResponseHandler struct {
	svc service.ResponseService
}

// NewResponseHandler creates a ResponseHandler.
func NewResponseHandler(svc service.ResponseService) *ResponseHandler {
	return &ResponseHandler{svc: svc}
}

// Get handles GET /api/responses. ?announcement_id= returns an announcement's
// responses with message counts; ?response_id= returns a thread's messages in
// chronological order.
func (h *ResponseHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if raw := q.Get("response_id"); raw != "" {
		responseID, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_response_id")
			return
		}
		messages, err := h.svc.Messages(r.Context(), responseID)
		if err != nil {
			slog.Error("message list failed", "error", err, "response_id", responseID)
			writeError(w, http.StatusInternalServerError, "list_failed")
			return
		}
		if messages == nil {
			messages = []*model.Message{}
		}
		writeJSON(w, http.StatusOK, messages)
		return
	}

	if raw := q.Get("announcement_id"); raw != "" {
		announcementID, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_announcement_id")
			return
		}
		responses, err := h.svc.ListByAnnouncement(r.Context(), announcementID)
		if err != nil {
			slog.Error("response list failed", "error", err, "announcement_id", announcementID)
			writeError(w, http.StatusInternalServerError, "list_failed")
			return
		}
		if responses == nil {
			responses = []*model.Response{}
		}
		writeJSON(w, http.StatusOK, responses)
		return
	}

	writeError(w, http.StatusBadRequest, "missing_id")
}

type responseActionRequest struct {
	Action           string `json:"action"`
	AnnouncementID   int    `json:"announcement_id"`
	ResponderName    string `json:"responder_name"`
	ResponderContact string `json:"responder_contact"`
	ResponseID       int    `json:"response_id"`
	SenderName       string `json:"sender_name"`
	Message          string `json:"message"`
}

// Post handles POST /api/responses, dispatching on the action field:
// create_response, send_message.
func (h *ResponseHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req responseActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	switch req.Action {
	case "create_response":
		h.create(w, r, req)
	case "send_message":
		h.sendMessage(w, r, req)
	default:
		writeError(w, http.StatusBadRequest, "unknown_action")
	}
}

func (h *ResponseHandler) create(w http.ResponseWriter, r *http.Request, req responseActionRequest) {
	resp, err := h.svc.Create(r.Context(), service.CreateResponseParams{
		AnnouncementID:   req.AnnouncementID,
		ResponderName:    req.ResponderName,
		ResponderContact: req.ResponderContact,
		Message:          req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			writeError(w, http.StatusBadRequest, "validation_failed")
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found")
		default:
			slog.Error("response create failed", "error", err, "announcement_id", req.AnnouncementID)
			writeError(w, http.StatusInternalServerError, "create_failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"response_id": resp.ID,
	})
}

func (h *ResponseHandler) sendMessage(w http.ResponseWriter, r *http.Request, req responseActionRequest) {
	msg, err := h.svc.SendMessage(r.Context(), req.ResponseID, req.SenderName, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			writeError(w, http.StatusBadRequest, "validation_failed")
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found")
		default:
			slog.Error("message send failed", "error", err, "response_id", req.ResponseID)
			writeError(w, http.StatusInternalServerError, "send_failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message_id": msg.ID,
	})
}
