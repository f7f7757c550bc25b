package storage

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteAdapter implements the repository ports using GORM and SQLite.
type SQLiteAdapter struct {
	db *gorm.DB
}

// UserModel is the GORM model backing the users collection. The unique email
// index is the sole arbiter of the duplicate-registration invariant.
type UserModel struct {
	ID           string `gorm:"primaryKey"`
	Fname        string `gorm:"size:30;not null"`
	Lname        string `gorm:"size:30;not null"`
	Email        string `gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:student"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string { return "users" }

// CourseModel is the GORM model backing the courses collection.
type CourseModel struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"size:100;uniqueIndex;not null"`
	Description string `gorm:"size:500;not null"`
	Duration    int    `gorm:"not null"`
	CreatedBy   string `gorm:"index;not null"`
	UpdatedBy   string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CourseModel) TableName() string { return "courses" }

// AuditLogModel stores one audit trail entry.
type AuditLogModel struct {
	ID        uint `gorm:"primaryKey"`
	ActorID   string
	Actor     string
	Action    string
	Target    string
	Details   string
	Timestamp time.Time `gorm:"index"`
}

func (AuditLogModel) TableName() string { return "audit_logs" }

// NewSQLiteAdapter opens the database and migrates the schema. TranslateError
// makes unique-index violations surface as gorm.ErrDuplicatedKey so the
// repositories can map them to domain conflicts.
func NewSQLiteAdapter(path string) (*SQLiteAdapter, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&UserModel{}, &CourseModel{}, &AuditLogModel{}); err != nil {
		return nil, err
	}

	return &SQLiteAdapter{db: db}, nil
}

// Users returns the user repository backed by this database.
func (a *SQLiteAdapter) Users() *UserRepo { return &UserRepo{db: a.db} }

// Courses returns the course repository backed by this database.
func (a *SQLiteAdapter) Courses() *CourseRepo { return &CourseRepo{db: a.db} }

// Audit returns the audit log repository backed by this database.
func (a *SQLiteAdapter) Audit() *AuditRepo { return &AuditRepo{db: a.db} }

func (a *SQLiteAdapter) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
