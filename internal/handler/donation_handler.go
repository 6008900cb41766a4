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

// DonationHandler handles the donation wall and the admin distribution actions.
type DonationHandler struct {
	svc   service.DonationService
	admin *AdminAuth
}

// NewDonationHandler creates a DonationHandler.
func NewDonationHandler(svc service.DonationService, admin *AdminAuth) *DonationHandler {
	return &DonationHandler{svc: svc, admin: admin}
}

// Get handles GET /api/donations. Public callers see the latest paid donations
// without contact or assignment fields; an admin credential widens the listing
// to every donation with all fields.
func (h *DonationHandler) Get(w http.ResponseWriter, r *http.Request) {
	if auth.IsAdminFromContext(r.Context()) || h.admin.FromRequest(r) {
		donations, err := h.svc.ListAll(r.Context())
		if err != nil {
			slog.Error("donation list failed", "error", err)
			writeError(w, http.StatusInternalServerError, "list_failed")
			return
		}
		if donations == nil {
			donations = []*model.Donation{}
		}
		writeJSON(w, http.StatusOK, donations)
		return
	}

	donations, err := h.svc.ListPublic(r.Context())
	if err != nil {
		slog.Error("donation list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if donations == nil {
		donations = []*model.PublicDonation{}
	}
	writeJSON(w, http.StatusOK, donations)
}

type donationActionRequest struct {
	Action       string `json:"action"`
	DonorName    string `json:"donor_name"`
	DonorContact string `json:"donor_contact"`
	Amount       int    `json:"amount"`
	Message      string `json:"message"`
	DonationID   int    `json:"donation_id"`
	AssignedTo   string `json:"assigned_to"`
	AdminNotes   string `json:"admin_notes"`
	AdminCode    string `json:"admin_code"`
}

// Post handles POST /api/donations, dispatching on the action field:
// create_donation, assign_donation (admin).
func (h *DonationHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req donationActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	switch req.Action {
	case "create_donation":
		h.create(w, r, req)
	case "assign_donation":
		h.assign(w, r, req)
	default:
		writeError(w, http.StatusBadRequest, "unknown_action")
	}
}

func (h *DonationHandler) create(w http.ResponseWriter, r *http.Request, req donationActionRequest) {
	receipt, err := h.svc.Create(r.Context(), service.CreateDonationParams{
		DonorName:    req.DonorName,
		DonorContact: req.DonorContact,
		Amount:       req.Amount,
		Message:      req.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, "validation_failed")
			return
		}
		slog.Error("donation create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"donation_id": receipt.Donation.ID,
		"card_number": receipt.CardNumber,
		"payment_url": receipt.PaymentURL,
	})
}

func (h *DonationHandler) assign(w http.ResponseWriter, r *http.Request, req donationActionRequest) {
	if !h.admin.Allowed(r, req.AdminCode) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}
	if err := h.svc.Assign(r.Context(), req.DonationID, req.AssignedTo, req.AdminNotes); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			writeError(w, http.StatusBadRequest, "validation_failed")
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found")
		default:
			slog.Error("donation assign failed", "error", err, "donation_id", req.DonationID)
			writeError(w, http.StatusInternalServerError, "assign_failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
