package server

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/likelion-sku/lionauth/kv"
	"github.com/likelion-sku/lionauth/redirects"
)

// Principal is the authenticated identity handed over by the callback once
// the identity provider has confirmed the user. Email is the provider-verified
// address the local account is resolved by.
type Principal struct {
	Email string
	Name  string
}

// onAuthenticationSuccess finalises a successful login: local account lookup,
// session cookie, optional refresh credential, and the redirect back to
// wherever the browser was originally headed.
//
// All store work happens before the cookie header is written, so any failure
// aborts the login without leaking a partial session.
func (s *Server) onAuthenticationSuccess(w http.ResponseWriter, r *http.Request, principal Principal) {
	account, err := s.accounts.GetByEmail(principal.Email)
	if err != nil {
		// No silent guest fallback: an unknown email is a login failure.
		log.Warn().Str("email", principal.Email).Msg("authenticated identity has no account")
		http.Error(w, "No account for authenticated user", http.StatusUnauthorized)
		return
	}

	sessionToken, err := s.tokenCreator.Mint(account)
	if err != nil {
		log.Error().Err(err).Msg("failed to mint session token")
		http.Error(w, "Login failed", http.StatusInternalServerError)
		return
	}

	// Only elevated-role accounts get the long-lived refresh credential.
	// Issuing replaces any previous credential for the same email.
	if account.IsAdmin() {
		if _, err := s.refreshTokens.Issue(r.Context(), account.Email); err != nil {
			log.Error().Err(err).Msg("failed to issue refresh token")
			http.Error(w, "Login failed", http.StatusInternalServerError)
			return
		}
	}

	// The callback's state parameter correlates this flow with the one-time
	// redirect target saved when the flow started.
	destination := redirects.DefaultTarget
	if state := r.FormValue("state"); state != "" {
		target, err := s.redirects.ConsumeOnce(r.Context(), state)
		switch {
		case err == nil:
			destination = target
		case errors.Is(err, kv.ErrNotFound):
			// Expired or already consumed; fall back to the default.
		default:
			log.Error().Err(err).Msg("failed to read redirect target")
			http.Error(w, "Login failed", http.StatusInternalServerError)
			return
		}
	}

	s.SetSessionCookie(w, sessionToken)

	log.Info().Str("email", account.Email).Str("destination", destination).Msg("login succeeded")
	http.Redirect(w, r, destination, http.StatusFound)
}
