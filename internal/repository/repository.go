// Package repository implements the data access layer for the application.
//
// Two implementations satisfy the storage contract: a GORM/Postgres store for
// production and a map-backed in-memory store for tests. The implementation
// is selected at startup, never at call time.
package repository

import (
	"context"
	"fmt"
	"time"

	"mirrortime/internal/models"
)

// EnsureResult is the outcome of an EnsureExists call.
//
// MappedID is the id callers must use for subsequent history writes. It
// differs from the requested id when a placeholder user was previously
// created under a store-assigned id. MappedID of zero means the store could
// not determine a mapping and the caller's original id is used as-is.
type EnsureResult struct {
	Success  bool
	MappedID int64
}

// UserRepository defines persistence operations for users.
// Lookup methods return (nil, nil) when no row matches.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create inserts the user, assigning its ID. Returns a conflict AppError
	// when the username or email is already taken.
	Create(ctx context.Context, user *models.User) error
	// EnsureExists guarantees a user row exists for a history save that
	// references userID, creating a placeholder account on demand. See
	// EnsureResult for the mapped-id contract.
	EnsureExists(ctx context.Context, userID int64) (EnsureResult, error)
}

// HistoryRepository defines persistence operations for history items.
type HistoryRepository interface {
	// Create inserts the item, assigning its ID and SavedAt.
	Create(ctx context.Context, item *models.HistoryItem) error
	// FindRecentDuplicate returns the most recent item matching
	// (userID, time, type) saved within the window, or (nil, nil).
	FindRecentDuplicate(ctx context.Context, userID int64, timeStr, itemType string, window time.Duration) (*models.HistoryItem, error)
	// ListByUserID returns all items for the user, most recent first.
	ListByUserID(ctx context.Context, userID int64) ([]models.HistoryItem, error)
	// Delete removes the item. A missing id is a no-op, not an error.
	Delete(ctx context.Context, id int64) error
}

// PlaceholderUsername is the deterministic username for lazily created users.
// It is the key that lets EnsureExists find a placeholder again after the
// store assigned it a different id than the one the client referenced.
func PlaceholderUsername(userID int64) string {
	return fmt.Sprintf("user_%d", userID)
}

// PlaceholderEmail is the synthesized email for lazily created users.
func PlaceholderEmail(userID int64) string {
	return fmt.Sprintf("user_%d@example.com", userID)
}
