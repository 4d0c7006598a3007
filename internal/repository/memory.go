package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"mirrortime/internal/models"
)

// MemoryStore is the in-memory implementation of the storage contract, used
// in tests and when running without a database. Users() and History() expose
// it as the two repository interfaces over shared state.
type MemoryStore struct {
	mu         sync.Mutex
	users      map[int64]models.User
	items      map[int64]models.HistoryItem
	nextUserID int64
	nextItemID int64

	// now is swappable so tests can move the clock past the dedup window.
	now func() time.Time
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[int64]models.User),
		items:      make(map[int64]models.HistoryItem),
		nextUserID: 1,
		nextItemID: 1,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Users returns the store's UserRepository view.
func (s *MemoryStore) Users() UserRepository { return memoryUsers{s} }

// History returns the store's HistoryRepository view.
func (s *MemoryStore) History() HistoryRepository { return memoryHistory{s} }

// SetNow overrides the store clock. Test helper.
func (s *MemoryStore) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

type memoryUsers struct{ s *MemoryStore }

func (m memoryUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if u, ok := m.s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (m memoryUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return m.s.findByUsernameLocked(username), nil
}

func (m memoryUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, u := range m.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (m memoryUsers) Create(_ context.Context, user *models.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return m.s.createUserLocked(user)
}

func (m memoryUsers) EnsureExists(_ context.Context, userID int64) (EnsureResult, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if _, ok := m.s.users[userID]; ok {
		return EnsureResult{Success: true, MappedID: userID}, nil
	}

	placeholder := PlaceholderUsername(userID)
	if existing := m.s.findByUsernameLocked(placeholder); existing != nil {
		return EnsureResult{Success: true, MappedID: existing.ID}, nil
	}

	created := &models.User{
		Username: placeholder,
		Email:    PlaceholderEmail(userID),
		Password: "!placeholder",
	}
	if err := m.s.createUserLocked(created); err != nil {
		// Unreachable under the mutex, but keep the contract's fallback.
		if winner := m.s.findByUsernameLocked(placeholder); winner != nil {
			return EnsureResult{Success: true, MappedID: winner.ID}, nil
		}
		return EnsureResult{Success: true}, nil
	}
	return EnsureResult{Success: true, MappedID: created.ID}, nil
}

func (s *MemoryStore) findByUsernameLocked(username string) *models.User {
	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u
		}
	}
	return nil
}

func (s *MemoryStore) createUserLocked(user *models.User) error {
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return models.NewConflictError("Username or email already taken")
		}
	}
	user.ID = s.nextUserID
	s.nextUserID++
	user.CreatedAt = s.now()
	s.users[user.ID] = *user
	return nil
}

type memoryHistory struct{ s *MemoryStore }

func (m memoryHistory) Create(_ context.Context, item *models.HistoryItem) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	item.ID = m.s.nextItemID
	m.s.nextItemID++
	if item.SavedAt.IsZero() {
		item.SavedAt = m.s.now()
	}
	m.s.items[item.ID] = *item
	return nil
}

func (m memoryHistory) FindRecentDuplicate(_ context.Context, userID int64, timeStr, itemType string, window time.Duration) (*models.HistoryItem, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	cutoff := m.s.now().Add(-window)
	var match *models.HistoryItem
	for _, it := range m.s.items {
		if it.UserID != userID || it.Time != timeStr || it.Type != itemType {
			continue
		}
		if !it.SavedAt.After(cutoff) {
			continue
		}
		if match == nil || it.SavedAt.After(match.SavedAt) ||
			(it.SavedAt.Equal(match.SavedAt) && it.ID > match.ID) {
			it := it
			match = &it
		}
	}
	return match, nil
}

func (m memoryHistory) ListByUserID(_ context.Context, userID int64) ([]models.HistoryItem, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	items := make([]models.HistoryItem, 0)
	for _, it := range m.s.items {
		if it.UserID == userID {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].SavedAt.Equal(items[j].SavedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].SavedAt.After(items[j].SavedAt)
	})
	return items, nil
}

func (m memoryHistory) Delete(_ context.Context, id int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	delete(m.s.items, id)
	return nil
}
