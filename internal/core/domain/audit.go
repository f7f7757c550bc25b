package domain

import (
	"errors"
	"time"
)

// AuditAction represents a type-safe action identifier for the audit log.
type AuditAction string

const (
	ActionRegister     AuditAction = "USER_REGISTERED"
	ActionLogin        AuditAction = "LOGIN"
	ActionLoginFailed  AuditAction = "LOGIN_FAILED"
	ActionCourseCreate AuditAction = "COURSE_CREATED"
	ActionCourseUpdate AuditAction = "COURSE_UPDATED"
	ActionCourseDelete AuditAction = "COURSE_DELETED"
	ActionExport       AuditAction = "COURSE_EXPORT"
)

var (
	ErrInvalidAction = errors.New("invalid audit action")
	ErrMissingActor  = errors.New("actor identification is required for auditing")
)

// AuditLog records a security-sensitive or mutating action.
type AuditLog struct {
	ID        uint        `json:"id"`
	ActorID   string      `json:"actor_id"`
	Actor     string      `json:"actor"` // denormalized email for display
	Action    AuditAction `json:"action"`
	Target    string      `json:"target"` // affected resource id or email
	Details   string      `json:"details"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewAuditLog is the designated factory for audit entries. It rejects entries
// with no actor identification or an unknown action.
func NewAuditLog(actorID, actor string, action AuditAction, target, details string) (*AuditLog, error) {
	if actorID == "" && actor == "" {
		return nil, ErrMissingActor
	}
	if !isValidAction(action) {
		return nil, ErrInvalidAction
	}

	return &AuditLog{
		ActorID:   actorID,
		Actor:     actor,
		Action:    action,
		Target:    target,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}, nil
}

func isValidAction(action AuditAction) bool {
	switch action {
	case ActionRegister, ActionLogin, ActionLoginFailed,
		ActionCourseCreate, ActionCourseUpdate, ActionCourseDelete, ActionExport:
		return true
	}
	return false
}
