// Package service implements the application's orchestration layer.
package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"mirrortime/internal/middleware"
	"mirrortime/internal/models"
	"mirrortime/internal/repository"
)

const (
	// maxDetailsLen caps the serialized interpretation snapshot.
	maxDetailsLen = 5000
	// duplicateWindow is the anti-duplicate window for overlapping save
	// triggers (explicit save vs. AI-analysis auto-save).
	duplicateWindow = 60 * time.Second
)

// HistoryService composes the classifier output, the caller-supplied
// interpretation snapshot, and the store into the save/list/delete flows.
type HistoryService struct {
	users   repository.UserRepository
	history repository.HistoryRepository
}

// NewHistoryService returns a HistoryService over the given repositories.
func NewHistoryService(users repository.UserRepository, history repository.HistoryRepository) *HistoryService {
	return &HistoryService{users: users, history: history}
}

// SaveInterpretationInput is the payload for SaveInterpretation.
// Details may be a string or any JSON-serializable value; it is persisted as
// opaque text.
type SaveInterpretationInput struct {
	UserID   int64
	Time     string
	Type     string
	Thoughts string
	Details  any
}

// SaveInterpretation persists an interpretation to the user's history.
//
// The flow ensures the owning user row exists (creating a placeholder on
// demand and remapping to its store-assigned id), then suppresses duplicate
// rows from racing save triggers by returning the existing item when an
// identical (user, time, type) save landed within the last minute.
func (s *HistoryService) SaveInterpretation(ctx context.Context, in SaveInterpretationInput) (*models.HistoryItem, error) {
	if in.Time == "" || in.Type == "" {
		return nil, models.NewValidationError("Missing required fields: time, type")
	}
	if in.UserID <= 0 {
		return nil, models.NewValidationError("Missing or invalid userId")
	}

	res, err := s.users.EnsureExists(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, models.NewValidationError("Failed to validate user")
	}

	userID := in.UserID
	if res.MappedID != 0 && res.MappedID != in.UserID {
		middleware.Logger.InfoContext(ctx, "history save remapped to placeholder user",
			slog.Int64("requested_id", in.UserID),
			slog.Int64("mapped_id", res.MappedID),
		)
		userID = res.MappedID
	}

	if dup, err := s.history.FindRecentDuplicate(ctx, userID, in.Time, in.Type, duplicateWindow); err != nil {
		return nil, err
	} else if dup != nil {
		// Idempotent save: a second trigger within the window returns the
		// already-persisted row.
		return dup, nil
	}

	item := &models.HistoryItem{
		UserID: userID,
		Time:   in.Time,
		Type:   in.Type,
	}
	if strings.TrimSpace(in.Thoughts) != "" {
		item.Thoughts = in.Thoughts
	}
	if in.Details != nil {
		details, err := serializeDetails(in.Details)
		if err != nil {
			return nil, models.NewValidationError("details is not serializable")
		}
		if details != "" {
			item.Details = details
		}
	}

	if err := s.history.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// serializeDetails renders the details payload as text, capped at
// maxDetailsLen characters.
func serializeDetails(details any) (string, error) {
	var out string
	if s, ok := details.(string); ok {
		out = s
	} else {
		b, err := json.Marshal(details)
		if err != nil {
			return "", err
		}
		out = string(b)
	}
	if runes := []rune(out); len(runes) > maxDetailsLen {
		out = string(runes[:maxDetailsLen])
	}
	return out, nil
}

// ListHistory returns the user's saved items, most recent first. Details
// stays serialized; clients re-parse it.
func (s *HistoryService) ListHistory(ctx context.Context, userID int64) ([]models.HistoryItem, error) {
	return s.history.ListByUserID(ctx, userID)
}

// DeleteHistory removes an item. A missing id is a no-op.
func (s *HistoryService) DeleteHistory(ctx context.Context, id int64) error {
	return s.history.Delete(ctx, id)
}
