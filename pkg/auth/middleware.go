package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

// AdminChecker resolves the administrator claim for an authenticated user.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// RequireAuth verifies the session cookie and stores the user id and admin
// claim in the request context. Requests without a valid session get 401.
func RequireAuth(sessionSecret []byte, admins AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName())
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			userID, err := VerifySessionToken(cookie.Value, sessionSecret)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_session"})
				return
			}

			isAdmin, err := admins.IsAdmin(r.Context(), userID)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "auth_lookup_failed"})
				return
			}

			ctx := WithUserID(r.Context(), userID)
			ctx = WithIsAdmin(ctx, isAdmin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DevUserID is the dummy user id injected when AUTH_REQUIRED=false.
const DevUserID = "dev-user-id"

// DevAuth injects a dummy admin identity for local development.
func DevAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithUserID(r.Context(), DevUserID)
		ctx = WithIsAdmin(ctx, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
