package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/edukit/coursehub/internal/core/domain"
	"github.com/edukit/coursehub/internal/core/ports"
)

// CourseRepo implements ports.CourseRepository on the shared SQLite database.
type CourseRepo struct {
	db *gorm.DB
}

// Ensure interface compliance
var _ ports.CourseRepository = (*CourseRepo)(nil)

// Create persists a new course, translating the unique name violation.
func (r *CourseRepo) Create(ctx context.Context, course domain.Course) error {
	model := toCourseModel(course)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrCourseNameTaken
		}
		return err
	}
	return nil
}

// GetByID retrieves a course by its ID.
func (r *CourseRepo) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	var model CourseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}
	return toCourseDomain(model), nil
}

// courseCreatorRow is the scan target for the joined listing query.
type courseCreatorRow struct {
	ID           string
	Name         string
	Description  string
	Duration     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CreatorID    string
	CreatorFname string
	CreatorLname string
	CreatorEmail string
	CreatorRole  string
}

// ListWithCreators joins courses against users and returns the listing
// projection: creator identity attached, internal audit references stripped.
func (r *CourseRepo) ListWithCreators(ctx context.Context) ([]domain.CourseSummary, error) {
	var rows []courseCreatorRow
	err := r.db.WithContext(ctx).
		Table("courses").
		Select(`courses.id, courses.name, courses.description, courses.duration,
			courses.created_at, courses.updated_at,
			users.id AS creator_id, users.fname AS creator_fname,
			users.lname AS creator_lname, users.email AS creator_email,
			users.role AS creator_role`).
		Joins("INNER JOIN users ON users.id = courses.created_by").
		Order("courses.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.CourseSummary, len(rows))
	for i, row := range rows {
		summaries[i] = domain.CourseSummary{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Duration:    row.Duration,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
			Creator: domain.CreatorIdentity{
				ID:    row.CreatorID,
				Fname: row.CreatorFname,
				Lname: row.CreatorLname,
				Email: row.CreatorEmail,
				Role:  domain.Role(row.CreatorRole),
			},
		}
	}
	return summaries, nil
}

// Update merges the non-nil fields into the stored record and returns the
// post-update state.
func (r *CourseRepo) Update(ctx context.Context, id string, in domain.UpdateCourseInput) (*domain.Course, error) {
	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Duration != nil {
		updates["duration"] = *in.Duration
	}
	if in.UpdatedBy != nil {
		updates["updated_by"] = *in.UpdatedBy
	}

	var model CourseModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCourseNotFound
			}
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		updates["updated_at"] = time.Now().UTC()
		if err := tx.Model(&model).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrCourseNameTaken
			}
			return err
		}
		return tx.First(&model, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}

	return toCourseDomain(model), nil
}

// Delete removes a course by ID.
func (r *CourseRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&CourseModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}
