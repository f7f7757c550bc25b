package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/edukit/coursehub/internal/core/domain"
	"github.com/edukit/coursehub/internal/core/ports"
	"github.com/edukit/coursehub/internal/telemetry"
)

// AuthService implements ports.AuthService.
// It orchestrates credential verification and token issuance; no state is
// kept across requests.
type AuthService struct {
	users  ports.UserRepository
	hasher *PasswordHasher
	tokens *TokenService
	audit  ports.AuditService
}

// NewAuthService creates a new authentication service instance. The audit
// collaborator may be nil.
func NewAuthService(users ports.UserRepository, hasher *PasswordHasher, tokens *TokenService, audit ports.AuditService) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		audit:  audit,
	}
}

// Register hashes the password, persists the user and issues a token for the
// new account. A duplicate email surfaces as domain.ErrEmailTaken; the raw
// store error never leaves the repository.
func (s *AuthService) Register(ctx context.Context, in domain.RegisterInput) (string, error) {
	if err := domain.ValidateRegister(in); err != nil {
		return "", err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           uuid.New().String(),
		Fname:        in.Fname,
		Lname:        in.Lname,
		Email:        domain.NormalizeEmail(in.Email),
		PasswordHash: hash,
		Role:         domain.RoleStudent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	telemetry.Registrations.Inc()
	slog.Info("user registered", "email", user.Email, "role", user.Role)
	s.record(ctx, domain.ActionRegister, user.Email, "")

	return s.tokens.Issue(user.ID)
}

// Login verifies credentials and returns a token. Unknown email and wrong
// password are indistinguishable to the caller to avoid email enumeration.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	if err := domain.ValidateLogin(creds); err != nil {
		return "", err
	}

	email := domain.NormalizeEmail(creds.Email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			// Store failure, not a bad credential. Surface it as-is so the
			// HTTP layer reports an internal error instead of a 401.
			return "", fmt.Errorf("failed to look up user: %w", err)
		}
		telemetry.Logins.WithLabelValues("failure").Inc()
		s.record(ctx, domain.ActionLoginFailed, email, "unknown email")
		return "", domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(creds.Password, user.PasswordHash) {
		telemetry.Logins.WithLabelValues("failure").Inc()
		s.record(ctx, domain.ActionLoginFailed, email, "password mismatch")
		return "", domain.ErrInvalidCredentials
	}

	telemetry.Logins.WithLabelValues("success").Inc()
	s.record(ctx, domain.ActionLogin, email, "")

	return s.tokens.Issue(user.ID)
}

// Authenticate verifies a bearer token and resolves its subject to a user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Valid signature but the subject no longer exists.
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to resolve token subject: %w", err)
	}

	return user, nil
}

func (s *AuthService) record(ctx context.Context, action domain.AuditAction, target, details string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Log(ctx, action, target, details); err != nil {
		slog.Warn("audit write failed", "action", action, "error", err)
	}
}
