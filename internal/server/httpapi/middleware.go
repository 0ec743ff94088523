package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/mpetrov/dashauth/internal/server/token"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// ClaimsFromContext returns the verified claims injected by RequireAuth.
func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*token.Claims)
	return c, ok
}

// RequireAuth verifies the "Authorization: Bearer <token>" header and injects
// the decoded claims into the request context. A missing or malformed header
// and an invalid or expired token are both rejected with 401; no revocation
// list exists, so any validly signed, unexpired token is accepted.
func RequireAuth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				writeJSON(w, http.StatusUnauthorized, message{"Missing or invalid auth header."})
				return
			}

			claims, err := token.Verify(raw, secretKey)
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, message{"Invalid or expired token."})
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
