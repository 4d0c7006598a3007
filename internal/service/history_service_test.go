package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"mirrortime/internal/models"
	"mirrortime/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHistoryService() (*HistoryService, *repository.MemoryStore) {
	store := repository.NewMemoryStore()
	return NewHistoryService(store.Users(), store.History()), store
}

func TestSaveInterpretation_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newHistoryService()
	ctx := context.Background()

	_, err := svc.SaveInterpretation(ctx, SaveInterpretationInput{UserID: 1, Type: "Mirror Hour"})
	assert.Error(t, err)

	_, err = svc.SaveInterpretation(ctx, SaveInterpretationInput{UserID: 1, Time: "12:12"})
	assert.Error(t, err)

	_, err = svc.SaveInterpretation(ctx, SaveInterpretationInput{Time: "12:12", Type: "Mirror Hour"})
	assert.Error(t, err)
}

func TestSaveInterpretation_IdempotentWithinWindow(t *testing.T) {
	t.Parallel()

	svc, store := newHistoryService()
	ctx := context.Background()

	now := time.Date(2025, 5, 10, 12, 12, 0, 0, time.UTC)
	store.SetNow(func() time.Time { return now })

	in := SaveInterpretationInput{UserID: 42, Time: "12:12", Type: "Mirror Hour"}

	first, err := svc.SaveInterpretation(ctx, in)
	require.NoError(t, err)

	// Second trigger (AI auto-save) lands 5 seconds later.
	store.SetNow(func() time.Time { return now.Add(5 * time.Second) })
	second, err := svc.SaveInterpretation(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "duplicate save within the window must return the existing row")

	items, err := svc.ListHistory(ctx, first.UserID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestSaveInterpretation_NewItemAfterWindow(t *testing.T) {
	t.Parallel()

	svc, store := newHistoryService()
	ctx := context.Background()

	now := time.Date(2025, 5, 10, 12, 12, 0, 0, time.UTC)
	store.SetNow(func() time.Time { return now })

	in := SaveInterpretationInput{UserID: 42, Time: "12:12", Type: "Mirror Hour"}

	first, err := svc.SaveInterpretation(ctx, in)
	require.NoError(t, err)

	store.SetNow(func() time.Time { return now.Add(duplicateWindow + time.Second) })
	second, err := svc.SaveInterpretation(ctx, in)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID, "identical save past the window creates a distinct row")

	items, err := svc.ListHistory(ctx, first.UserID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestSaveInterpretation_MappedIDSubstitution(t *testing.T) {
	t.Parallel()

	svc, store := newHistoryService()
	ctx := context.Background()

	// Client references an id the store never assigned; the placeholder is
	// created under a store-assigned id and the row must land there.
	const clientID = int64(1747000000000)
	item, err := svc.SaveInterpretation(ctx, SaveInterpretationInput{
		UserID: clientID, Time: "21:12", Type: "Reversed Hour",
	})
	require.NoError(t, err)
	assert.NotEqual(t, clientID, item.UserID)

	owner, err := store.Users().GetByID(ctx, item.UserID)
	require.NoError(t, err)
	require.NotNil(t, owner, "history row must reference an existing user")
	assert.Equal(t, "user_1747000000000", owner.Username)

	// A later save for the same client id joins the same history.
	store.SetNow(func() time.Time { return time.Now().UTC().Add(2 * time.Minute) })
	again, err := svc.SaveInterpretation(ctx, SaveInterpretationInput{
		UserID: clientID, Time: "21:12", Type: "Reversed Hour",
	})
	require.NoError(t, err)
	assert.Equal(t, item.UserID, again.UserID)
}

func TestSaveInterpretation_BlankThoughtsOmitted(t *testing.T) {
	t.Parallel()

	svc, _ := newHistoryService()
	ctx := context.Background()

	item, err := svc.SaveInterpretation(ctx, SaveInterpretationInput{
		UserID: 1, Time: "12:12", Type: "Mirror Hour", Thoughts: "   ",
	})
	require.NoError(t, err)
	assert.Empty(t, item.Thoughts)

	item, err = svc.SaveInterpretation(ctx, SaveInterpretationInput{
		UserID: 1, Time: "12:21", Type: "Reversed Hour", Thoughts: "felt a shiver",
	})
	require.NoError(t, err)
	assert.Equal(t, "felt a shiver", item.Thoughts)
}

func TestSaveInterpretation_DetailsSerializedAndCapped(t *testing.T) {
	t.Parallel()

	svc, _ := newHistoryService()
	ctx := context.Background()

	t.Run("object is serialized to JSON", func(t *testing.T) {
		item, err := svc.SaveInterpretation(ctx, SaveInterpretationInput{
			UserID: 1, Time: "12:12", Type: "Mirror Hour",
			Details: map[string]any{"spiritual": map[string]any{"title": "Crossroads of Growth"}},
		})
		require.NoError(t, err)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal([]byte(item.Details), &parsed))
		assert.Contains(t, parsed, "spiritual")
	})

	t.Run("string passes through", func(t *testing.T) {
		item, err := svc.SaveInterpretation(ctx, SaveInterpretationInput{
			UserID: 1, Time: "13:13", Type: "Mirror Hour",
			Details: `{"already":"serialized"}`,
		})
		require.NoError(t, err)
		assert.Equal(t, `{"already":"serialized"}`, item.Details)
	})

	t.Run("oversized payload is truncated", func(t *testing.T) {
		item, err := svc.SaveInterpretation(ctx, SaveInterpretationInput{
			UserID: 1, Time: "14:14", Type: "Mirror Hour",
			Details: strings.Repeat("x", 6000),
		})
		require.NoError(t, err)
		assert.Len(t, item.Details, maxDetailsLen)
	})
}

func TestDeleteHistory(t *testing.T) {
	t.Parallel()

	svc, _ := newHistoryService()
	ctx := context.Background()

	item, err := svc.SaveInterpretation(ctx, SaveInterpretationInput{
		UserID: 1, Time: "12:12", Type: "Mirror Hour",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteHistory(ctx, item.ID))

	items, err := svc.ListHistory(ctx, item.UserID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Deleting again is a no-op.
	assert.NoError(t, svc.DeleteHistory(ctx, item.ID))
}

func TestSaveInterpretation_EnsureFailureSurfaces(t *testing.T) {
	t.Parallel()

	store := repository.NewMemoryStore()
	svc := NewHistoryService(failingUsers{store.Users()}, store.History())

	_, err := svc.SaveInterpretation(context.Background(), SaveInterpretationInput{
		UserID: 1, Time: "12:12", Type: "Mirror Hour",
	})
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
}

// failingUsers wraps a UserRepository and fails EnsureExists with a storage fault.
type failingUsers struct {
	repository.UserRepository
}

func (f failingUsers) EnsureExists(ctx context.Context, userID int64) (repository.EnsureResult, error) {
	return repository.EnsureResult{}, models.NewInternalError(assert.AnError)
}
