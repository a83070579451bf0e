package server

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// CallbackHandler finishes a login flow after the identity provider redirects
// back. Parse form to support both GET (query params) and POST (form_post
// response mode); r.FormValue works for both.
func (s *Server) CallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := r.FormValue("state")
		code := r.FormValue("code")
		errorParam := r.FormValue("error")
		errorDesc := r.FormValue("error_description")

		// Check for authorization errors
		if errorParam != "" {
			http.Error(w, fmt.Sprintf("Authorization failed: %s - %s", errorParam, errorDesc), http.StatusBadRequest)
			return
		}

		if code == "" || state == "" {
			http.Error(w, "Missing code or state parameter", http.StatusBadRequest)
			return
		}

		// One-time read-and-delete: an expired or replayed state finds nothing
		// and the flow is rejected before any token exchange happens.
		authReq, err := s.authRequests.Consume(r.Context(), state)
		if err != nil {
			log.Warn().Err(err).Msg("callback with unknown or expired state")
			http.Error(w, "Invalid state parameter", http.StatusUnauthorized)
			return
		}

		registrationID := r.PathValue("registrationId")
		if authReq.Attributes[attrRegistrationID] != registrationID {
			http.Error(w, "Invalid state parameter", http.StatusUnauthorized)
			return
		}

		oidcConfig, err := s.getOidcConfigForRegistration(r.Context(), registrationID)
		if err != nil {
			http.Error(w, "Unknown client registration", http.StatusNotFound)
			return
		}

		// Exchange authorization code for tokens using the standard oauth2 library
		oauth2Token, err := oidcConfig.OAuth2Config.Exchange(r.Context(), code)
		if err != nil {
			log.Warn().Err(err).Msg("token exchange failed")
			http.Error(w, "Token exchange failed", http.StatusUnauthorized)
			return
		}

		rawIDToken, ok := oauth2Token.Extra("id_token").(string)
		if !ok {
			http.Error(w, "No ID token in response", http.StatusUnauthorized)
			return
		}

		// Verify the ID token signature and claims
		idToken, err := oidcConfig.OidcVerifier.Verify(r.Context(), rawIDToken)
		if err != nil {
			log.Warn().Err(err).Msg("id token verification failed")
			http.Error(w, "ID token verification failed", http.StatusUnauthorized)
			return
		}

		var claims struct {
			Email         string `json:"email"`
			EmailVerified *bool  `json:"email_verified"`
			Name          string `json:"name"`
		}
		if err := idToken.Claims(&claims); err != nil {
			http.Error(w, "Failed to extract claims", http.StatusUnauthorized)
			return
		}
		if claims.Email == "" || (claims.EmailVerified != nil && !*claims.EmailVerified) {
			http.Error(w, "Email not verified", http.StatusUnauthorized)
			return
		}

		s.onAuthenticationSuccess(w, r, Principal{
			Email: claims.Email,
			Name:  claims.Name,
		})
	}
}
