package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/edukit/coursehub/internal/core/domain"
	"github.com/edukit/coursehub/internal/core/ports"
)

// UserRepo implements ports.UserRepository on the shared SQLite database.
type UserRepo struct {
	db *gorm.DB
}

// Ensure interface compliance
var _ ports.UserRepository = (*UserRepo)(nil)

// Create persists a new user. The store's unique email index enforces the
// duplicate-registration invariant; the violation is translated here.
func (r *UserRepo) Create(ctx context.Context, user domain.User) error {
	model := toUserModel(user)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

// GetByEmail retrieves a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return toUserDomain(model), nil
}

// GetByID retrieves a user by their ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return toUserDomain(model), nil
}

// Count returns the number of registered users.
func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&UserModel{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
