package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/helpnearby/backend/internal/repository"
	"github.com/helpnearby/backend/internal/service"
)

// PaymentHandler handles the listing payment flow.
type PaymentHandler struct {
	svc   service.PaymentService
	admin *AdminAuth
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc service.PaymentService, admin *AdminAuth) *PaymentHandler {
	return &PaymentHandler{svc: svc, admin: admin}
}

type paymentActionRequest struct {
	Action         string `json:"action"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	AuthorName     string `json:"author_name"`
	AuthorContact  string `json:"author_contact"`
	Type           string `json:"type"`
	AnnouncementID int    `json:"announcement_id"`
	AdminCode      string `json:"admin_code"`
}

// Post handles POST /api/payments, dispatching on the action field:
// create_payment, check_payment, confirm_payment (admin).
func (h *PaymentHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req paymentActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	switch req.Action {
	case "create_payment":
		h.create(w, r, req)
	case "check_payment":
		h.check(w, r, req.AnnouncementID)
	case "confirm_payment":
		h.confirm(w, r, req)
	default:
		writeError(w, http.StatusBadRequest, "unknown_action")
	}
}

func (h *PaymentHandler) create(w http.ResponseWriter, r *http.Request, req paymentActionRequest) {
	intent, err := h.svc.Create(r.Context(), service.CreatePaymentParams{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		AuthorName:    req.AuthorName,
		AuthorContact: req.AuthorContact,
		Tier:          req.Type,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, "validation_failed")
			return
		}
		slog.Error("payment create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"announcement_id": intent.AnnouncementID,
		"amount":          intent.Amount,
		"card_number":     intent.CardNumber,
		"payment_status":  intent.PaymentStatus,
	})
}

func (h *PaymentHandler) check(w http.ResponseWriter, r *http.Request, announcementID int) {
	intent, err := h.svc.Check(r.Context(), announcementID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		slog.Error("payment check failed", "error", err, "announcement_id", announcementID)
		writeError(w, http.StatusInternalServerError, "check_failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"payment_status": intent.PaymentStatus,
		"amount":         intent.Amount,
	})
}

func (h *PaymentHandler) confirm(w http.ResponseWriter, r *http.Request, req paymentActionRequest) {
	if !h.admin.Allowed(r, req.AdminCode) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}
	if err := h.svc.Confirm(r.Context(), req.AnnouncementID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found")
		case errors.Is(err, service.ErrInvalidTransition):
			writeError(w, http.StatusConflict, "invalid_transition")
		default:
			slog.Error("payment confirm failed", "error", err, "announcement_id", req.AnnouncementID)
			writeError(w, http.StatusInternalServerError, "confirm_failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
