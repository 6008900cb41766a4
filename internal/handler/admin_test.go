package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/helpnearby/backend/pkg/auth"
)

const testAdminCode = "HELP2025"

func testAdminAuth() *AdminAuth {
	return NewAdminAuth(
		auth.NewCodeVerifier(testAdminCode, ""),
		auth.SecretBytes("test-secret"),
	)
}

// ---------------------------------------------------------------------------
// AdminAuth credential tests
// ---------------------------------------------------------------------------

func TestAdminAuth_VerifyCode(t *testing.T) {
	a := testAdminAuth()
	if !a.VerifyCode(testAdminCode) {
		t.Error("expected configured code to verify")
	}
	if a.VerifyCode("WRONG") {
		t.Error("expected wrong code to fail")
	}
	if a.VerifyCode("") {
		t.Error("expected empty code to fail")
	}
}

func TestAdminAuth_QueryCode(t *testing.T) {
	a := testAdminAuth()

	req := httptest.NewRequest(http.MethodGet, "/api/donations?admin_code="+testAdminCode, nil)
	if !a.FromRequest(req) {
		t.Error("expected admin_code query parameter to authorize")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/donations?admin_code=WRONG", nil)
	if a.FromRequest(req) {
		t.Error("expected wrong query code to fail")
	}
}

func TestAdminAuth_BearerToken(t *testing.T) {
	a := testAdminAuth()
	token, expiresIn := a.IssueToken()
	if expiresIn <= 0 {
		t.Fatalf("expected positive token lifetime, got %d", expiresIn)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/donations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	if !a.FromRequest(req) {
		t.Error("expected issued token to authorize")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/donations", nil)
	req.Header.Set("Authorization", "Bearer forged.token")
	if a.FromRequest(req) {
		t.Error("expected forged token to fail")
	}
}

func TestAdminAuth_BodyCode(t *testing.T) {
	a := testAdminAuth()

	req := httptest.NewRequest(http.MethodPost, "/api/donations", nil)
	if !a.Allowed(req, testAdminCode) {
		t.Error("expected body code to authorize")
	}
	if a.Allowed(req, "WRONG") {
		t.Error("expected wrong body code to fail")
	}
}

func TestAdminAuth_ContextMiddleware(t *testing.T) {
	a := testAdminAuth()

	var sawAdmin bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAdmin = auth.IsAdminFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/donations?admin_code="+testAdminCode, nil)
	a.Context(next).ServeHTTP(httptest.NewRecorder(), req)
	if !sawAdmin {
		t.Error("expected context to carry admin flag for valid code")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/donations", nil)
	a.Context(next).ServeHTTP(httptest.NewRecorder(), req)
	if sawAdmin {
		t.Error("expected no admin flag without credential")
	}
}

// ---------------------------------------------------------------------------
// POST /api/admin/login tests
// ---------------------------------------------------------------------------

func TestAdminHandler_Login_Success(t *testing.T) {
	a := testAdminAuth()
	h := NewAdminHandler(a)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"admin_code":"`+testAdminCode+`"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success   bool   `json:"success"`
		Token     string `json:"token"`
		ExpiresIn int    `json:"expires_in"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Token == "" || resp.ExpiresIn <= 0 {
		t.Errorf("unexpected login response: %+v", resp)
	}

	// The issued token must be usable as a Bearer credential.
	check := httptest.NewRequest(http.MethodGet, "/api/donations", nil)
	check.Header.Set("Authorization", "Bearer "+resp.Token)
	if !a.FromRequest(check) {
		t.Error("issued token rejected by FromRequest")
	}
}

func TestAdminHandler_Login_WrongCode(t *testing.T) {
	h := NewAdminHandler(testAdminAuth())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"admin_code":"WRONG"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestAdminHandler_Login_InvalidJSON(t *testing.T) {
	h := NewAdminHandler(testAdminAuth())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{bad`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
