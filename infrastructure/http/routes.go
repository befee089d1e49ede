package http

import (
	"github.com/go-chi/chi/v5"

	"uploadlink/frontend/dashboard"
	"uploadlink/frontend/history"
	"uploadlink/frontend/login"
	"uploadlink/frontend/reports"
)

// RegisterLoginRoutes registers login/logout routes.
func (s *Server) RegisterLoginRoutes() {
	s.router.Get("/login", login.GetLoginScreenHandler)
	s.router.Post("/login", login.CreateLoginHandler(s.DB, s.SessionCache, s.UserCache))
	s.router.Post("/logout", login.LogoutHandler(s.DB, s.SessionCache))
}

// RegisterFrontendRoutes registers authenticated routes.
func (s *Server) RegisterFrontendRoutes(r chi.Router) chi.Router {
	r.Get("/dashboard", dashboard.DashboardPageQueryHandler(s.Sync, s.Notify, s.Window))
	r.Post("/uploads/{target}", dashboard.UploadCommandHandler(s.DB, s.Ingest, s.Sync, s.Notify, s.Audit))
	r.Post("/notification/ack", dashboard.AcknowledgeCommandHandler(s.Notify))

	r.Get("/history", history.HistoryPageQueryHandler(s.DB))
	r.Get("/reports/{period}", reports.MonthlyReportPDFHandler(s.Sync, s.Window))
	return r
}
