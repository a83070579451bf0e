package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

const contentTypeJSON = "application/json; charset=utf-8"

// MeHandler returns the verified claims of the current session.
func (s *Server) MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := SessionFromContext(r.Context())

		w.Header().Set("Content-Type", contentTypeJSON)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"email": claims.Email,
			"name":  claims.Name,
			"track": claims.Track,
			"role":  claims.Role,
		})
	}
}

// AdminSessionHandler reports the session plus whether an active refresh
// credential exists for the account. Admin-only.
func (s *Server) AdminSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := SessionFromContext(r.Context())

		_, err := s.refreshTokens.Get(r.Context(), claims.Email)

		w.Header().Set("Content-Type", contentTypeJSON)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"email":         claims.Email,
			"role":          claims.Role,
			"refresh_token": err == nil,
		})
	}
}

// LogoutHandler ends the session: the cookie is cleared and any refresh
// credential for the account is revoked.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if claims, err := s.sessionFromRequest(r); err == nil {
			if err := s.refreshTokens.Revoke(r.Context(), claims.Email); err != nil {
				log.Warn().Err(err).Str("email", claims.Email).Msg("failed to revoke refresh token")
			}
		}

		s.ClearSessionCookie(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
