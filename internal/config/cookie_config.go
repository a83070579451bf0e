package config

import (
	"net/http"
	"strings"
)

type CookieConfig interface {
	GetCookieSecure() bool
	GetCookieSameSite() http.SameSite
}

type Cookies struct{}

var _ CookieConfig = Cookies{}

func (Cookies) GetCookieSecure() bool {
	return GetEnv("COOKIE_SECURE", "false") == "true"
}

// GetCookieSameSite maps the COOKIE_SAMESITE env var onto http.SameSite.
// Unrecognised values fall back to Lax.
func (Cookies) GetCookieSameSite() http.SameSite {
	switch strings.ToLower(GetEnv("COOKIE_SAMESITE", "lax")) {
	case "none":
		return http.SameSiteNoneMode
	case "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteLaxMode
	}
}
