package server

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/likelion-sku/lionauth/authrequest"
)

// attrRegistrationID records which client registration started a flow, so
// the callback can reject a state replayed against a different registration.
const attrRegistrationID = "registration_id"

// AuthorizationHandler starts a login flow.
//
// The incoming request may carry a query parameter named "state": that value
// is the caller's desired post-login destination (e.g. ?state=/dashboard),
// NOT the provider-flow CSRF state. The CSRF state is generated here, is
// never derived from caller input, and is the only state value the identity
// provider ever sees.
func (s *Server) AuthorizationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		registrationID := r.PathValue("registrationId")

		oidcConfig, err := s.getOidcConfigForRegistration(r.Context(), registrationID)
		if err != nil {
			// No underlying request to resolve: nothing is written to either store.
			log.Warn().Err(err).Str("registration", registrationID).Msg("start-login for unknown registration")
			http.Error(w, "Unknown client registration", http.StatusNotFound)
			return
		}

		authReq := s.resolveAuthorizationRequest(oidcConfig, registrationID)

		if err := s.authRequests.Save(r.Context(), authReq); err != nil {
			log.Error().Err(err).Msg("failed to persist authorization request")
			http.Error(w, "Login could not be started", http.StatusInternalServerError)
			return
		}

		// The caller's destination rides along in its own record, keyed by the
		// generated CSRF state. The authorization request itself stays untouched.
		destination := strings.TrimSpace(r.URL.Query().Get("state"))
		if err := s.redirects.Save(r.Context(), authReq.State, destination); err != nil {
			log.Error().Err(err).Msg("failed to persist redirect target")
			http.Error(w, "Login could not be started", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, authReq.RequestURI, http.StatusFound)
	}
}

// resolveAuthorizationRequest builds the provider request with a freshly
// generated CSRF state, mirroring exactly what is sent on the wire.
func (s *Server) resolveAuthorizationRequest(oidcConfig OidcConfig, registrationID string) *authrequest.Request {
	state := generateRandomString(s.config.GetStateLength())
	cfg := oidcConfig.OAuth2Config

	return &authrequest.Request{
		AuthorizationURI: cfg.Endpoint.AuthURL,
		ClientID:         cfg.ClientID,
		RedirectURI:      cfg.RedirectURL,
		Scopes:           append([]string(nil), cfg.Scopes...),
		State:            state,
		AdditionalParams: map[string]string{"access_type": "offline"},
		RequestURI:       cfg.AuthCodeURL(state, oauth2.AccessTypeOffline),
		Attributes:       map[string]string{attrRegistrationID: registrationID},
	}
}
