package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/edukit/coursehub/internal/adapters/web/middleware"
	"github.com/edukit/coursehub/internal/core/domain"
)

// SetupRoutes builds the full route table. Everything lives under /api/v1
// except the root greeting; course and audit routes sit behind the bearer
// admission gate.
func SetupRoutes(s *Server) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", handleRoot).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public auth endpoints, rate limited per client IP
	rateLimit := middleware.RateLimitMiddleware(s.authLimiter)

	api.Handle("/auth/register", rateLimit(http.HandlerFunc(s.AuthHandler.HandleRegister))).Methods(http.MethodPost)
	api.Handle("/auth/login", rateLimit(http.HandlerFunc(s.AuthHandler.HandleLogin))).Methods(http.MethodPost)

	admit := middleware.AuthMiddleware(s.AuthService)

	api.Handle("/me", admit(http.HandlerFunc(s.AuthHandler.HandleMe))).Methods(http.MethodGet)

	// Course CRUD (protected)
	courses := api.PathPrefix("/courses").Subrouter()
	courses.Use(mux.MiddlewareFunc(admit))
	courses.HandleFunc("", s.CourseHandler.HandleCreate).Methods(http.MethodPost)
	courses.HandleFunc("", s.CourseHandler.HandleList).Methods(http.MethodGet)
	courses.HandleFunc("/export", s.CourseHandler.HandleExport).Methods(http.MethodGet)
	courses.HandleFunc("/{id}", s.CourseHandler.HandleGet).Methods(http.MethodGet)
	courses.HandleFunc("/{id}", s.CourseHandler.HandleUpdate).Methods(http.MethodPatch, http.MethodPut)
	courses.HandleFunc("/{id}", s.CourseHandler.HandleDelete).Methods(http.MethodDelete)

	// Audit trail (admin only)
	requireAdmin := middleware.RoleMiddleware(domain.RoleAdmin)
	api.Handle("/audit-logs", admit(requireAdmin(http.HandlerFunc(s.AuditHandler.HandleGetLogs)))).Methods(http.MethodGet)

	// Metrics endpoint (protected - requires authentication)
	r.Handle("/metrics", admit(promhttp.Handler())).Methods(http.MethodGet)

	return r
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Hello World!"))
}
