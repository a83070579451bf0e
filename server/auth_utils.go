package server

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
)

// SessionCookieName is the cookie carrying the signed session credential.
// HTTP-only, so page script never sees it.
const SessionCookieName = "access_token"

// generateRandomString creates a random base64url string of length random bytes.
// Used for the CSRF state, which must be unguessable and unique per flow.
func generateRandomString(length int) string {
	b := make([]byte, length)
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

func (s *Server) SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.config.GetCookieSecure(),
		SameSite: s.config.GetCookieSameSite(),
		MaxAge:   int(s.config.GetSessionTokenExpiry().Seconds()),
	})
}

func (s *Server) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.config.GetCookieSecure(),
		SameSite: s.config.GetCookieSameSite(),
		MaxAge:   -1,
	})
}
