package storage

import "github.com/edukit/coursehub/internal/core/domain"

// toUserModel converts a domain entity to its database model.
func toUserModel(u domain.User) UserModel {
	return UserModel{
		ID:           u.ID,
		Fname:        u.Fname,
		Lname:        u.Lname,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toUserDomain(m UserModel) *domain.User {
	return &domain.User{
		ID:           m.ID,
		Fname:        m.Fname,
		Lname:        m.Lname,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toCourseModel(c domain.Course) CourseModel {
	return CourseModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Duration:    c.Duration,
		CreatedBy:   c.CreatedBy,
		UpdatedBy:   c.UpdatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCourseDomain(m CourseModel) *domain.Course {
	return &domain.Course{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Duration:    m.Duration,
		CreatedBy:   m.CreatedBy,
		UpdatedBy:   m.UpdatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toAuditModel(e domain.AuditLog) AuditLogModel {
	return AuditLogModel{
		ActorID:   e.ActorID,
		Actor:     e.Actor,
		Action:    string(e.Action),
		Target:    e.Target,
		Details:   e.Details,
		Timestamp: e.Timestamp,
	}
}

func toAuditDomain(m AuditLogModel) domain.AuditLog {
	return domain.AuditLog{
		ID:        m.ID,
		ActorID:   m.ActorID,
		Actor:     m.Actor,
		Action:    domain.AuditAction(m.Action),
		Target:    m.Target,
		Details:   m.Details,
		Timestamp: m.Timestamp,
	}
}
