package config

import (
	"strings"
	"time"
)

type OAuthConfig interface {
	GetAuthRequestTTL() time.Duration
	GetRedirectTargetTTL() time.Duration
	GetSessionTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
	GetStateLength() int
	GetRegistration(registrationID string) (Registration, bool)
}

// Registration holds the static client configuration for one external
// identity provider, addressed by the registrationId path segment of the
// start-login and callback routes.
type Registration struct {
	ID           string
	ClientID     string
	ClientSecret string
	Issuer       string
	Scopes       []string
}

type OAuth struct{}

var _ OAuthConfig = OAuth{}

func (OAuth) GetAuthRequestTTL() time.Duration {
	return 5 * time.Minute
}

func (OAuth) GetRedirectTargetTTL() time.Duration {
	return 5 * time.Minute
}

func (OAuth) GetSessionTokenExpiry() time.Duration {
	return 1 * time.Hour
}

func (OAuth) GetRefreshTokenExpiry() time.Duration {
	return 30 * 24 * time.Hour // 30 days
}

func (OAuth) GetStateLength() int {
	return 32 // 32 bytes = 256 bits
}

// GetRegistration reads OAUTH_<ID>_* environment variables for the requested
// registration, e.g. OAUTH_GOOGLE_CLIENT_ID. A registration without a client
// ID is treated as absent.
func (OAuth) GetRegistration(registrationID string) (Registration, bool) {
	prefix := "OAUTH_" + strings.ToUpper(registrationID) + "_"

	clientID := GetEnv(prefix+"CLIENT_ID", "")
	if clientID == "" {
		return Registration{}, false
	}

	return Registration{
		ID:           registrationID,
		ClientID:     clientID,
		ClientSecret: GetEnv(prefix+"CLIENT_SECRET", ""),
		Issuer:       GetEnv(prefix+"ISSUER", "https://accounts.google.com"),
		Scopes:       strings.Fields(GetEnv(prefix+"SCOPES", "openid profile email")),
	}, true
}
