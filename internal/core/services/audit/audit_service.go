package audit

import (
	"context"

	"github.com/edukit/coursehub/internal/core/domain"
	"github.com/edukit/coursehub/internal/core/ports"
)

// AuditService persists a trail of security-sensitive and mutating actions.
type AuditService struct {
	repo ports.AuditRepository
}

func NewAuditService(repo ports.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

// Log records an action attributed to the authenticated user in ctx, or to
// "system" for unauthenticated flows such as registration and login.
func (s *AuditService) Log(ctx context.Context, action domain.AuditAction, target, details string) error {
	actorID := "system"
	actor := "system"
	if u, ok := domain.ActorFromContext(ctx); ok {
		actorID = u.ID
		actor = u.Email
	}

	entry, err := domain.NewAuditLog(actorID, actor, action, target, details)
	if err != nil {
		return err
	}

	return s.repo.SaveAuditLog(ctx, *entry)
}

// GetLogs retrieves historical audit records, newest first.
func (s *AuditService) GetLogs(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	return s.repo.ListAuditLogs(ctx, limit)
}
