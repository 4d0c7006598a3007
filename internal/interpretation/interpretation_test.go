package interpretation

import (
	"context"
	"testing"

	"mirrortime/internal/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_CuratedEntry(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	got := r.Resolve(context.Background(), "11:11", "en")

	assert.Equal(t, "Mirror Hour", got.Type)
	assert.Equal(t, "Spiritual Awakening", got.Spiritual.Title)
	assert.Equal(t, "Lehahiah", got.Angel.Name)
}

func TestResolve_FrenchLocale(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	got := r.Resolve(context.Background(), "11:11", "fr")

	assert.Equal(t, "Mirror Hour", got.Type)
	assert.Equal(t, "Éveil Spirituel", got.Spiritual.Title)
}

func TestResolve_FallbackNeverEmpty(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	for _, tc := range []struct {
		time     string
		locale   string
		wantType string
	}{
		{"09:17", "en", "Regular Hour"},
		{"03:30", "en", "Reversed Hour"},
		{"05:05", "fr", "Mirror Hour"},
		{"14:41", "de", "Reversed Hour"}, // unknown locale falls back to en
	} {
		got := r.Resolve(context.Background(), tc.time, tc.locale)
		require.Equal(t, tc.wantType, got.Type, tc.time)
		assert.NotEmpty(t, got.Spiritual.Title, tc.time)
		assert.NotEmpty(t, got.Spiritual.Description, tc.time)
		assert.NotEmpty(t, got.Angel.Message, tc.time)
		assert.NotEmpty(t, got.Numerology.RootNumber, tc.time)
	}
}

func TestResolve_CachesResult(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	cache.InitRedis(addr)
	t.Cleanup(func() {
		mr.Close()
		// Re-init against the dead server so the package client resets to
		// nil for the remaining tests.
		cache.InitRedis(addr)
	})

	r := NewResolver()
	first := r.Resolve(context.Background(), "03:30", "en")
	require.Equal(t, "Reversed Hour", first.Type)

	// The resolution landed in Redis under the locale-scoped key.
	assert.True(t, mr.Exists(cache.InterpretationKey("en", "03:30")))

	second := r.Resolve(context.Background(), "03:30", "en")
	assert.Equal(t, first, second)
}

func TestResolve_FallbackMentionsTime(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	got := r.Resolve(context.Background(), "09:17", "en")
	assert.Contains(t, got.Numerology.Title, "09:17")
	assert.Contains(t, got.Numerology.RootNumber, "8") // 0+9+1+7 = 17 -> 8
}
