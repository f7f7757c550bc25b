package ports

import (
	"context"

	"github.com/edukit/coursehub/internal/core/domain"
)

// CourseService defines the business logic for course management.
type CourseService interface {
	// Create validates that the owner exists and persists a new course.
	Create(ctx context.Context, in domain.CreateCourseInput) (*domain.Course, error)
	// List returns all courses with the creator identity joined in.
	List(ctx context.Context) ([]domain.CourseSummary, error)
	// Export returns the listing for download and records the export.
	Export(ctx context.Context) ([]domain.CourseSummary, error)
	// Get retrieves a single course by ID.
	Get(ctx context.Context, id string) (*domain.Course, error)
	// Update applies a partial update and returns the post-update record.
	Update(ctx context.Context, id string, in domain.UpdateCourseInput) (*domain.Course, error)
	// Delete removes a course. Deleting a missing course is not an error.
	Delete(ctx context.Context, id string) error
}

// CourseRepository defines the persistence layer for courses.
type CourseRepository interface {
	// Create persists a new course. A duplicate name yields domain.ErrCourseNameTaken.
	Create(ctx context.Context, course domain.Course) error
	// GetByID retrieves a course by its ID.
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	// ListWithCreators returns the listing projection joined against users.
	ListWithCreators(ctx context.Context) ([]domain.CourseSummary, error)
	// Update merges non-nil fields into the stored record and returns it.
	Update(ctx context.Context, id string, in domain.UpdateCourseInput) (*domain.Course, error)
	// Delete removes a course by ID, reporting domain.ErrCourseNotFound if absent.
	Delete(ctx context.Context, id string) error
}
