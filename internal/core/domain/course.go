package domain

import "time"

// Course represents a unit of teachable content owned by a user.
type Course struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"` // hours
	CreatedBy   string    `json:"createdBy"`
	UpdatedBy   string    `json:"updatedBy"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreatorIdentity is the slice of the owning user attached to course listings.
type CreatorIdentity struct {
	ID    string `json:"id"`
	Fname string `json:"fname"`
	Lname string `json:"lname"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// CourseSummary is the listing projection: creator identity joined in,
// internal audit references (createdBy/updatedBy) stripped out.
type CourseSummary struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Duration    int             `json:"duration"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Creator     CreatorIdentity `json:"createdByUser"`
}

// --- Request objects ---

// CreateCourseInput is the course creation request body.
type CreateCourseInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	CreatedBy   string `json:"createdBy"`
	UpdatedBy   string `json:"updatedBy"`
}

// UpdateCourseInput carries a partial course update. Nil fields are left as-is.
type UpdateCourseInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Duration    *int    `json:"duration,omitempty"`
	UpdatedBy   *string `json:"updatedBy,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (in UpdateCourseInput) Empty() bool {
	return in.Name == nil && in.Description == nil && in.Duration == nil && in.UpdatedBy == nil
}
