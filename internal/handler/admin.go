package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/helpnearby/backend/pkg/auth"
)

// adminTokenTTL is how long an issued admin session token stays valid.
const adminTokenTTL = 12 * time.Hour

// AdminAuth validates the moderator credential on incoming requests. Two
// shapes are accepted: the shared passcode (query parameter or POST body
// field, kept for wire compatibility) and a signed session token issued by
// the login endpoint, carried as a Bearer Authorization header.
type AdminAuth struct {
	codes  *auth.CodeVerifier
	secret []byte
}

// NewAdminAuth creates an AdminAuth over the configured passcode verifier and
// token signing secret.
func NewAdminAuth(codes *auth.CodeVerifier, secret []byte) *AdminAuth {
	return &AdminAuth{codes: codes, secret: secret}
}

// VerifyCode reports whether code matches the configured passcode.
func (a *AdminAuth) VerifyCode(code string) bool {
	return a.codes.Verify(code)
}

// IssueToken creates a fresh admin session token and returns it with its
// lifetime in seconds.
func (a *AdminAuth) IssueToken() (string, int) {
	return auth.CreateAdminToken(a.secret, adminTokenTTL), int(adminTokenTTL.Seconds())
}

// FromRequest checks the request-level credentials: a Bearer token or an
// admin_code query parameter.
func (a *AdminAuth) FromRequest(r *http.Request) bool {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		if auth.VerifyAdminToken(strings.TrimPrefix(h, "Bearer "), a.secret) == nil {
			return true
		}
	}
	return a.VerifyCode(r.URL.Query().Get("admin_code"))
}

// Allowed reports whether the request carries any valid admin credential,
// including a passcode sent in the POST body.
func (a *AdminAuth) Allowed(r *http.Request, bodyCode string) bool {
	if auth.IsAdminFromContext(r.Context()) {
		return true
	}
	if a.FromRequest(r) {
		return true
	}
	return a.VerifyCode(bodyCode)
}

// Context is middleware that resolves the request-level admin credential once
// and annotates the request context, so read handlers can widen their output
// without re-checking headers.
func (a *AdminAuth) Context(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(auth.WithAdmin(r.Context(), a.FromRequest(r))))
	})
}
