package handler

import (
	"encoding/json"
	"net/http"
)

// AdminHandler exchanges the moderator passcode for an expiring session token,
// so the passcode itself does not have to travel on every privileged call.
type AdminHandler struct {
	admin *AdminAuth
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(admin *AdminAuth) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type adminLoginRequest struct {
	AdminCode string `json:"admin_code"`
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if !h.admin.VerifyCode(req.AdminCode) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	token, expiresIn := h.admin.IssueToken()
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"token":      token,
		"expires_in": expiresIn,
	})
}
