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

// AnnouncementHandler handles the announcement feed and its POST actions.
type AnnouncementHandler struct {
	svc   service.AnnouncementService
	stats service.StatsService
	admin *AdminAuth
}

// NewAnnouncementHandler creates an AnnouncementHandler.
func NewAnnouncementHandler(svc service.AnnouncementService, stats service.StatsService, admin *AdminAuth) *AnnouncementHandler {
	return &AnnouncementHandler{svc: svc, stats: stats, admin: admin}
}

// Get handles GET /api/announcements. Without parameters it returns the public
// feed; ?author= returns that author's announcements in every status; an admin
// credential returns all announcements regardless of status.
func (h *AnnouncementHandler) Get(w http.ResponseWriter, r *http.Request) {
	var (
		announcements []*model.Announcement
		err           error
	)
	switch {
	case auth.IsAdminFromContext(r.Context()) || h.admin.FromRequest(r):
		announcements, err = h.svc.ListAll(r.Context())
	case r.URL.Query().Get("author") != "":
		announcements, err = h.svc.ListByAuthor(r.Context(), r.URL.Query().Get("author"))
	default:
		announcements, err = h.svc.Feed(r.Context())
	}
	if err != nil {
		slog.Error("announcement list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if announcements == nil {
		announcements = []*model.Announcement{}
	}
	writeJSON(w, http.StatusOK, announcements)
}

type announcementActionRequest struct {
	Action       string `json:"action"`
	ID           int    `json:"id"`
	VisitorToken string `json:"visitor_token"`
	AdminCode    string `json:"admin_code"`
}

// Post handles POST /api/announcements, dispatching on the action field:
// close, delete (admin), track_view, track_visit, get_stats (admin).
func (h *AnnouncementHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req announcementActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	switch req.Action {
	case "close":
		h.close(w, r, req.ID)
	case "delete":
		h.delete(w, r, req)
	case "track_view":
		h.trackView(w, r, req.ID)
	case "track_visit":
		h.trackVisit(w, r, req.VisitorToken)
	case "get_stats":
		h.getStats(w, r, req.AdminCode)
	default:
		writeError(w, http.StatusBadRequest, "unknown_action")
	}
}

func (h *AnnouncementHandler) close(w http.ResponseWriter, r *http.Request, id int) {
	if err := h.svc.Close(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found")
		case errors.Is(err, service.ErrInvalidTransition):
			writeError(w, http.StatusConflict, "invalid_transition")
		default:
			slog.Error("announcement close failed", "error", err, "announcement_id", id)
			writeError(w, http.StatusInternalServerError, "close_failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AnnouncementHandler) delete(w http.ResponseWriter, r *http.Request, req announcementActionRequest) {
	if !h.admin.Allowed(r, req.AdminCode) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}
	if err := h.svc.Delete(r.Context(), req.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		slog.Error("announcement delete failed", "error", err, "announcement_id", req.ID)
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// trackView is best-effort: storage failures are logged, never surfaced.
func (h *AnnouncementHandler) trackView(w http.ResponseWriter, r *http.Request, id int) {
	if err := h.svc.TrackView(r.Context(), id); err != nil {
		slog.Error("view tracking failed", "error", err, "announcement_id", id)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// trackVisit is best-effort like trackView. The visitor token echoed back is
// either the one supplied or a freshly issued one to keep client-side.
func (h *AnnouncementHandler) trackVisit(w http.ResponseWriter, r *http.Request, visitorToken string) {
	token, err := h.stats.RecordVisit(r.Context(), visitorToken)
	if err != nil {
		slog.Error("visit tracking failed", "error", err)
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "visitor_token": token})
}

func (h *AnnouncementHandler) getStats(w http.ResponseWriter, r *http.Request, adminCode string) {
	if !h.admin.Allowed(r, adminCode) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}
	stats, err := h.stats.Stats(r.Context())
	if err != nil {
		slog.Error("stats aggregation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "stats_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "stats": stats})
}
