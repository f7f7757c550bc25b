package handlers

import (
	"net/http"

	"github.com/edukit/coursehub/internal/adapters/web/middleware"
	"github.com/edukit/coursehub/internal/core/domain"
	"github.com/edukit/coursehub/internal/core/ports"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	Service ports.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{
		Service: service,
	}
}

// HandleRegister creates an account and returns an access token.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var in domain.RegisterInput
	if !decodeJSON(w, r, &in) {
		return
	}

	token, err := h.Service.Register(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domain.TokenResponse{AccessToken: token})
}

// HandleLogin verifies credentials and returns an access token.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if !decodeJSON(w, r, &creds) {
		return
	}

	token, err := h.Service.Login(r.Context(), creds)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.TokenResponse{AccessToken: token})
}

// HandleMe returns the identity behind the presented token.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r)
	if !ok {
		writeError(w, domain.ErrNoToken)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
