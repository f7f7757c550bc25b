package course

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/edukit/coursehub/internal/core/domain"
	"github.com/edukit/coursehub/internal/core/ports"
	"github.com/edukit/coursehub/internal/telemetry"
)

// CourseService implements ports.CourseService over the course and user
// repositories.
type CourseService struct {
	courses ports.CourseRepository
	users   ports.UserRepository
	audit   ports.AuditService
}

// NewCourseService creates a new course service. The audit collaborator may
// be nil.
func NewCourseService(courses ports.CourseRepository, users ports.UserRepository, audit ports.AuditService) *CourseService {
	return &CourseService{
		courses: courses,
		users:   users,
		audit:   audit,
	}
}

// Create persists a new course after checking that the owner exists. Nothing
// is written when the owner lookup fails.
func (s *CourseService) Create(ctx context.Context, in domain.CreateCourseInput) (*domain.Course, error) {
	if err := domain.ValidateCreateCourse(in); err != nil {
		return nil, err
	}

	owner, err := s.users.GetByID(ctx, in.CreatedBy)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c := domain.Course{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Duration:    in.Duration,
		CreatedBy:   owner.ID,
		UpdatedBy:   in.UpdatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.courses.Create(ctx, c); err != nil {
		return nil, err
	}

	telemetry.CourseOps.WithLabelValues("create").Inc()
	slog.Info("course created", "id", c.ID, "name", c.Name)
	s.record(ctx, domain.ActionCourseCreate, c.ID, c.Name)

	return &c, nil
}

// List returns all courses with the creator identity joined in and the
// internal audit references stripped.
func (s *CourseService) List(ctx context.Context) ([]domain.CourseSummary, error) {
	return s.courses.ListWithCreators(ctx)
}

// Export returns the listing for download and leaves an audit entry, since
// bulk reads are worth tracing separately from regular listings.
func (s *CourseService) Export(ctx context.Context) ([]domain.CourseSummary, error) {
	summaries, err := s.courses.ListWithCreators(ctx)
	if err != nil {
		return nil, err
	}

	telemetry.CourseOps.WithLabelValues("export").Inc()
	s.record(ctx, domain.ActionExport, "", "")

	return summaries, nil
}

// Get retrieves a single course by ID.
func (s *CourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// Update applies a partial field replacement and returns the updated record.
func (s *CourseService) Update(ctx context.Context, id string, in domain.UpdateCourseInput) (*domain.Course, error) {
	if err := domain.ValidateUpdateCourse(in); err != nil {
		return nil, err
	}

	updated, err := s.courses.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}

	telemetry.CourseOps.WithLabelValues("update").Inc()
	s.record(ctx, domain.ActionCourseUpdate, id, "")

	return updated, nil
}

// Delete removes a course. A missing course is treated as already deleted.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			return nil
		}
		return err
	}

	telemetry.CourseOps.WithLabelValues("delete").Inc()
	s.record(ctx, domain.ActionCourseDelete, id, "")

	return nil
}

func (s *CourseService) record(ctx context.Context, action domain.AuditAction, target, details string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Log(ctx, action, target, details); err != nil {
		slog.Warn("audit write failed", "action", action, "error", err)
	}
}
