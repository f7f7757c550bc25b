package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/edukit/coursehub/internal/adapters/web/handlers"
	"github.com/edukit/coursehub/internal/adapters/web/middleware"
	"github.com/edukit/coursehub/internal/core/ports"
)

// Server handles HTTP connections.
type Server struct {
	Addr          string
	AuthService   ports.AuthService
	AuthHandler   *handlers.AuthHandler
	CourseHandler *handlers.CourseHandler
	AuditHandler  *handlers.AuditHandler
	authLimiter   *middleware.RateLimiter
	srv           *http.Server
}

// NewServer creates a new web server.
func NewServer(addr string, authService ports.AuthService, courseService ports.CourseService, auditService ports.AuditService) *Server {
	return &Server{
		Addr:          addr,
		AuthService:   authService,
		AuthHandler:   handlers.NewAuthHandler(authService),
		CourseHandler: handlers.NewCourseHandler(courseService),
		AuditHandler:  handlers.NewAuditHandler(auditService),
		authLimiter:   middleware.NewRateLimiter(5, 1*time.Minute),
	}
}

// Close releases resources not tied to a running listener.
func (s *Server) Close() {
	s.authLimiter.Stop()
}

// Run starts the server and blocks until ctx is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	handler := SetupRoutes(s)

	// Instrument with OpenTelemetry
	instrumentedHandler := otelhttp.NewHandler(handler, "coursehub-server")

	s.srv = &http.Server{
		Addr:              s.Addr,
		Handler:           instrumentedHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful Shutdown implementation
	go func() {
		<-ctx.Done()
		log.Println("Web Server shutting down...")
		s.authLimiter.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Web Server shutdown error: %v", err)
		}
	}()

	log.Printf("Web server listening on %s", s.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
