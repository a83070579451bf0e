package server

import (
	"context"
	"net/http"

	"github.com/likelion-sku/lionauth/accounts"
	tokenjwt "github.com/likelion-sku/lionauth/token/jwt"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeySession stores the verified session claims
const ContextKeySession ContextKey = "session"

// RequireSessionAuth validates the session cookie and injects the verified
// claims into the request context. Requests without a valid session get 401.
func (s *Server) RequireSessionAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			claims, err := s.sessionFromRequest(r)
			if err != nil {
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, claims)
			next(w, r.WithContext(ctx))
		}
	}
}

// RequireRole rejects sessions that do not hold the given role. Must run
// after RequireSessionAuth.
func (s *Server) RequireRole(role accounts.RoleType) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			claims := SessionFromContext(r.Context())
			if claims == nil || claims.Role != role {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next(w, r)
		}
	}
}

// sessionFromRequest extracts and verifies the session cookie.
func (s *Server) sessionFromRequest(r *http.Request) (*tokenjwt.SessionClaims, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, err
	}
	return s.tokenInspector.Verify(cookie.Value)
}

// SessionFromContext returns the claims injected by RequireSessionAuth, or
// nil when the request is unauthenticated.
func SessionFromContext(ctx context.Context) *tokenjwt.SessionClaims {
	claims, _ := ctx.Value(ContextKeySession).(*tokenjwt.SessionClaims)
	return claims
}
