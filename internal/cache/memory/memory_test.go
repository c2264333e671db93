package memory

import (
	"context"
	"testing"
	"time"

	"environment-deployments/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testKey = entities.RepoKey{Owner: "acme", Name: "widgets"}

func testData() []entities.EnvironmentSnapshot {
	return []entities.EnvironmentSnapshot{
		{Name: "production", Deployment: &entities.Deployment{
			ID:          "DEP_1",
			Environment: "production",
			CreatedAt:   time.Date(2024, 5, 1, 0, 0, 10, 0, time.UTC),
		}},
	}
}

func TestMemoryGetMissOnEmpty(t *testing.T) {
	m := New(zap.NewNop().Sugar(), 5*time.Minute)

	_, err := m.Get(context.Background(), testKey)
	require.ErrorIs(t, err, entities.ErrCacheMiss)
}

func TestMemoryPutThenGet(t *testing.T) {
	m := New(zap.NewNop().Sugar(), 5*time.Minute)
	data := testData()

	require.NoError(t, m.Put(context.Background(), testKey, data))

	entry, err := m.Get(context.Background(), testKey)
	require.NoError(t, err)
	require.Equal(t, data, entry.Data)
	require.False(t, entry.FetchedAt.IsZero())
}

func TestMemoryExpiryIsLazy(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := New(zap.NewNop().Sugar(), 5*time.Minute)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Put(context.Background(), testKey, testData()))

	// Still fresh just inside the window.
	now = now.Add(5*time.Minute - time.Second)
	_, err := m.Get(context.Background(), testKey)
	require.NoError(t, err)

	// Expired at the window boundary.
	now = now.Add(time.Second)
	_, err = m.Get(context.Background(), testKey)
	require.ErrorIs(t, err, entities.ErrCacheMiss)
}

func TestMemoryPutReplacesWholeEntry(t *testing.T) {
	m := New(zap.NewNop().Sugar(), 5*time.Minute)

	require.NoError(t, m.Put(context.Background(), testKey, testData()))
	require.NoError(t, m.Put(context.Background(), testKey, []entities.EnvironmentSnapshot{}))

	entry, err := m.Get(context.Background(), testKey)
	require.NoError(t, err)
	require.Empty(t, entry.Data)
}

func TestMemoryKeysAreCaseSensitive(t *testing.T) {
	m := New(zap.NewNop().Sugar(), 5*time.Minute)

	require.NoError(t, m.Put(context.Background(), testKey, testData()))

	_, err := m.Get(context.Background(), entities.RepoKey{Owner: "Acme", Name: "widgets"})
	require.ErrorIs(t, err, entities.ErrCacheMiss)
}
