package server

import "github.com/likelion-sku/lionauth/accounts"

func (s *Server) initRoutes() {
	// LOGIN FLOW
	s.RegisterRouteFunc("GET "+RouteAuthorization, s.AuthorizationHandler())
	s.RegisterRouteFunc("GET "+RouteCallback, s.CallbackHandler())
	s.RegisterRouteFunc("POST "+RouteCallback, s.CallbackHandler()) // For form_post response mode
	s.RegisterRouteFunc("GET "+RouteLogout, s.LogoutHandler())

	// Authenticated API (session cookie required)
	s.RegisterRouteHandler("GET "+RouteMe, ChainMiddleware(s.MeHandler(), s.APIMiddleware(s.RequireSessionAuth())...))

	// Admin routes (session cookie plus elevated role)
	s.RegisterRouteHandler("GET "+RouteAdminSession, ChainMiddleware(s.AdminSessionHandler(), s.APIMiddleware(s.RequireSessionAuth(), s.RequireRole(accounts.RoleAdmin))...))
}
