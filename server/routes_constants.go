package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// OAuth2 login flow
	RouteAuthorization = "/oauth2/authorization/{registrationId}"
	RouteCallback      = "/login/oauth2/code/{registrationId}"
	RouteLogout        = "/auth/logout"

	// Authenticated API
	RouteMe = "/me"

	// Admin routes (require the elevated role)
	RouteAdminSession = "/admin/session"
)
