package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/likelion-sku/lionauth/accounts"
	"github.com/likelion-sku/lionauth/authrequest"
	"github.com/likelion-sku/lionauth/internal/config"
	errs "github.com/likelion-sku/lionauth/internal/errors"
	"github.com/likelion-sku/lionauth/redirects"
	tokenjwt "github.com/likelion-sku/lionauth/token/jwt"
	"github.com/likelion-sku/lionauth/token/refresh"
)

// OidcConfig bundles the discovered provider machinery for one client
// registration.
type OidcConfig struct {
	OidcProvider *oidc.Provider
	OAuth2Config *oauth2.Config
	OidcVerifier *oidc.IDTokenVerifier
}

type Server struct {
	env    string // Environment (e.g., "DEV", "PROD")
	mux    *http.ServeMux
	routes []string
	config config.Config

	accounts       accounts.Repo
	authRequests   *authrequest.Store
	redirects      *redirects.Store
	refreshTokens  *refresh.Manager
	tokenCreator   *tokenjwt.Creator
	tokenInspector *tokenjwt.Inspector

	registrationOidc     map[string]OidcConfig
	registrationOidcLock sync.RWMutex
}

func New(
	cfg config.Config,
	accountRepo accounts.Repo,
	authRequests *authrequest.Store,
	redirectTargets *redirects.Store,
	refreshTokens *refresh.Manager,
) *Server {
	s := &Server{
		mux:              http.NewServeMux(),
		config:           cfg,
		accounts:         accountRepo,
		authRequests:     authRequests,
		redirects:        redirectTargets,
		refreshTokens:    refreshTokens,
		tokenCreator:     tokenjwt.NewCreator(cfg.GetJWTSecret(), cfg.GetSessionTokenExpiry()),
		tokenInspector:   tokenjwt.NewInspector(cfg.GetJWTSecret()),
		registrationOidc: make(map[string]OidcConfig),
	}
	s.env = cfg.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

// getOidcConfigForRegistration lazily discovers the provider for a client
// registration and caches the result for later flows.
func (s *Server) getOidcConfigForRegistration(ctx context.Context, registrationID string) (OidcConfig, error) {
	s.registrationOidcLock.RLock()
	oidcConfig, exists := s.registrationOidc[registrationID]
	s.registrationOidcLock.RUnlock()
	if exists {
		return oidcConfig, nil
	}

	registration, ok := s.config.GetRegistration(registrationID)
	if !ok {
		return OidcConfig{}, fmt.Errorf("%q: %w", registrationID, errs.ErrRegistrationNotFound)
	}

	provider, err := oidc.NewProvider(ctx, registration.Issuer)
	if err != nil {
		return OidcConfig{}, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	oidcConfig = OidcConfig{
		OidcProvider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     registration.ClientID,
			ClientSecret: registration.ClientSecret,
			Endpoint:     provider.Endpoint(),
			RedirectURL:  s.config.GetBaseURL() + callbackPath(registrationID),
			Scopes:       registration.Scopes,
		},
		OidcVerifier: provider.Verifier(&oidc.Config{
			ClientID: registration.ClientID,
		}),
	}

	s.registrationOidcLock.Lock()
	s.registrationOidc[registrationID] = oidcConfig
	s.registrationOidcLock.Unlock()

	return oidcConfig, nil
}

func callbackPath(registrationID string) string {
	return strings.Replace(RouteCallback, "{registrationId}", registrationID, 1)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}
