package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/edukit/coursehub/internal/core/domain"
	"github.com/edukit/coursehub/internal/core/ports"
	"github.com/edukit/coursehub/internal/telemetry"
)

// AuthMiddleware is the per-request admission gate. It extracts the bearer
// token, verifies it and places the resolved user in the request context.
// "No token supplied" and "token supplied but invalid" deny with distinct
// messages; both yield 401.
func AuthMiddleware(authService ports.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				telemetry.AdmissionDenied.WithLabelValues("missing").Inc()
				writeUnauthorized(w, "no token provided")
				return
			}

			user, err := authService.Authenticate(r.Context(), token)
			if err != nil {
				if !errors.Is(err, domain.ErrInvalidToken) {
					// Subject lookup hit the store and failed; this is an
					// outage, not a bad token.
					slog.Error("token subject resolution failed", "error", err)
					writeErrorBody(w, http.StatusInternalServerError, "internal", "Internal server error")
					return
				}
				telemetry.AdmissionDenied.WithLabelValues("invalid").Inc()
				writeUnauthorized(w, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(domain.WithActor(r.Context(), user)))
		})
	}
}

// RoleMiddleware checks if the authenticated user has the required role.
// Hierarchy: admin > instructor > student.
func RoleMiddleware(requiredRole domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := domain.ActorFromContext(r.Context())
			if !ok {
				writeUnauthorized(w, "no token provided")
				return
			}

			if !hasPermission(user.Role, requiredRole) {
				writeErrorBody(w, http.StatusForbidden, "forbidden", "insufficient role")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext returns the authenticated user set by AuthMiddleware.
func UserFromContext(r *http.Request) (*domain.User, bool) {
	return domain.ActorFromContext(r.Context())
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func hasPermission(userRole, requiredRole domain.Role) bool {
	if userRole == domain.RoleAdmin {
		return true
	}
	if userRole == domain.RoleInstructor {
		return requiredRole != domain.RoleAdmin
	}
	if userRole == domain.RoleStudent {
		return requiredRole == domain.RoleStudent
	}
	return false
}

// errorBody matches the envelope the handlers package serializes failures to.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeErrorBody(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorBody{Error: kind, Message: message}); err != nil {
		slog.Warn("response encode failed", "error", err)
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	writeErrorBody(w, http.StatusUnauthorized, "unauthorized", message)
}
