package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubAdminChecker struct {
	admins map[string]bool
	err    error
}

func (s *stubAdminChecker) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.admins[userID], nil
}

func okHandler(gotUserID *string, gotAdmin *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := UserIDFromContext(r.Context()); ok {
			*gotUserID = id
		}
		*gotAdmin = IsAdminFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_NoCookie(t *testing.T) {
	secret := SessionSecretBytes("test-secret")
	var userID string
	var isAdmin bool
	h := RequireAuth(secret, &stubAdminChecker{})(okHandler(&userID, &isAdmin))

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	secret := SessionSecretBytes("test-secret")
	var userID string
	var isAdmin bool
	h := RequireAuth(secret, &stubAdminChecker{})(okHandler(&userID, &isAdmin))

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: "garbage"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAuth_ValidSessionSetsContext(t *testing.T) {
	secret := SessionSecretBytes("test-secret")
	var userID string
	var isAdmin bool
	checker := &stubAdminChecker{admins: map[string]bool{"user-1": true}}
	h := RequireAuth(secret, checker)(okHandler(&userID, &isAdmin))

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: CreateSessionToken("user-1", secret)})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if userID != "user-1" {
		t.Errorf("expected user-1 in context, got %q", userID)
	}
	if !isAdmin {
		t.Error("expected admin claim in context")
	}
}

func TestRequireAuth_NonAdminClaim(t *testing.T) {
	secret := SessionSecretBytes("test-secret")
	var userID string
	var isAdmin bool
	h := RequireAuth(secret, &stubAdminChecker{})(okHandler(&userID, &isAdmin))

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: CreateSessionToken("user-2", secret)})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if isAdmin {
		t.Error("expected no admin claim for unknown user")
	}
}

func TestDevAuth_InjectsAdminIdentity(t *testing.T) {
	var userID string
	var isAdmin bool
	h := DevAuth(okHandler(&userID, &isAdmin))

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if userID != DevUserID {
		t.Errorf("expected dev user id, got %q", userID)
	}
	if !isAdmin {
		t.Error("expected dev identity to be admin")
	}
}
