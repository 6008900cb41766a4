package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/helpnearby/backend/internal/model"
	"github.com/helpnearby/backend/internal/repository"
	"github.com/helpnearby/backend/internal/service"
	"github.com/helpnearby/backend/pkg/auth"
)

// CelebrityHandler handles celebrity outreach requests.
type CelebrityHandler struct {
	svc   service.CelebrityService
	admin *AdminAuth
}

// NewCelebrityHandler creates a CelebrityHandler.
func NewCelebrityHandler(svc service.CelebrityService, admin *AdminAuth) *CelebrityHandler {
	return &CelebrityHandler{svc: svc, admin: admin}
}

// Get handles GET /api/celebrities. Public callers see the latest non-rejected
// requests without contact or note fields; an admin credential returns every
// request with all fields.
func (h *CelebrityHandler) Get(w http.ResponseWriter, r *http.Request) {
	var (
		requests []*model.CelebrityRequest
		err      error
	)
	if auth.IsAdminFromContext(r.Context()) || h.admin.FromRequest(r) {
		requests, err = h.svc.ListAll(r.Context())
	} else {
		requests, err = h.svc.ListPublic(r.Context())
	}
	if err != nil {
		slog.Error("celebrity request list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if requests == nil {
		requests = []*model.CelebrityRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}

type celebrityActionRequest struct {
	Action           string `json:"action"`
	RequesterName    string `json:"requester_name"`
	RequesterContact string `json:"requester_contact"`
	CelebrityName    string `json:"celebrity_name"`
	RequestText      string `json:"request_text"`
	RequestID        int    `json:"request_id"`
	Status           string `json:"status"`
	AdminNotes       string `json:"admin_notes"`
	AdminCode        string `json:"admin_code"`
}

// Post handles POST /api/celebrities, dispatching on the action field:
// create_request, update_status (admin).
func (h *CelebrityHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req celebrityActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	switch req.Action {
	case "create_request":
		h.create(w, r, req)
	case "update_status":
		h.updateStatus(w, r, req)
	default:
		writeError(w, http.StatusBadRequest, "unknown_action")
	}
}

func (h *CelebrityHandler) create(w http.ResponseWriter, r *http.Request, req celebrityActionRequest) {
	receipt, err := h.svc.Create(r.Context(), service.CreateCelebrityRequestParams{
		RequesterName:    req.RequesterName,
		RequesterContact: req.RequesterContact,
		CelebrityName:    req.CelebrityName,
		RequestText:      req.RequestText,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, "validation_failed")
			return
		}
		slog.Error("celebrity request create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"request_id":  receipt.Request.ID,
		"amount":      receipt.Amount,
		"card_number": receipt.CardNumber,
	})
}

func (h *CelebrityHandler) updateStatus(w http.ResponseWriter, r *http.Request, req celebrityActionRequest) {
	if !h.admin.Allowed(r, req.AdminCode) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}
	if err := h.svc.UpdateStatus(r.Context(), req.RequestID, req.Status, req.AdminNotes); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			writeError(w, http.StatusBadRequest, "invalid_status")
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found")
		default:
			slog.Error("celebrity status update failed", "error", err, "request_id", req.RequestID)
			writeError(w, http.StatusInternalServerError, "update_failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
