package storage

import (
	"context"

	"gorm.io/gorm"

	"github.com/edukit/coursehub/internal/core/domain"
	"github.com/edukit/coursehub/internal/core/ports"
)

// AuditRepo implements ports.AuditRepository on the shared SQLite database.
type AuditRepo struct {
	db *gorm.DB
}

// Ensure interface compliance
var _ ports.AuditRepository = (*AuditRepo)(nil)

// SaveAuditLog persists a single audit entry.
func (r *AuditRepo) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	model := toAuditModel(entry)
	return r.db.WithContext(ctx).Create(&model).Error
}

// ListAuditLogs retrieves audit entries, newest first.
func (r *AuditRepo) ListAuditLogs(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	var models []AuditLogModel
	if err := r.db.WithContext(ctx).Order("timestamp desc").Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}

	logs := make([]domain.AuditLog, len(models))
	for i, m := range models {
		logs[i] = toAuditDomain(m)
	}
	return logs, nil
}
