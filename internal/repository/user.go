package repository

import (
	"context"
	"errors"
	"strings"

	"mirrortime/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a Postgres-backed UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Username or email already taken")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// EnsureExists satisfies the foreign-key invariant before a history save.
//
// Placeholder users are created with a store-assigned id, not the id the
// client referenced, so a later save for the same client id must be remapped
// to the placeholder's actual row via its deterministic username.
func (r *userRepository) EnsureExists(ctx context.Context, userID int64) (EnsureResult, error) {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		return EnsureResult{}, err
	}
	if user != nil {
		return EnsureResult{Success: true, MappedID: userID}, nil
	}

	placeholder := PlaceholderUsername(userID)
	existing, err := r.GetByUsername(ctx, placeholder)
	if err != nil {
		return EnsureResult{}, err
	}
	if existing != nil {
		return EnsureResult{Success: true, MappedID: existing.ID}, nil
	}

	// Placeholder accounts must never be able to authenticate: hash a
	// throwaway random secret instead of storing a known password.
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return EnsureResult{}, models.NewInternalError(err)
	}

	created := &models.User{
		Username: placeholder,
		Email:    PlaceholderEmail(userID),
		Password: string(hash),
	}
	if err := r.Create(ctx, created); err != nil {
		if models.IsConflict(err) {
			// Lost the race to a concurrent save creating the same
			// placeholder. Re-read and use the winner's id.
			winner, gerr := r.GetByUsername(ctx, placeholder)
			if gerr == nil && winner != nil {
				return EnsureResult{Success: true, MappedID: winner.ID}, nil
			}
			// Weak fallback: trust the caller's original id.
			return EnsureResult{Success: true}, nil
		}
		return EnsureResult{}, err
	}

	return EnsureResult{Success: true, MappedID: created.ID}, nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
