package analytics

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:", "test-salt")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecord_IgnoresBlankQueries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, SearchEvent{Query: "   "}))
	top, err := s.TopQueries(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestTopQueries_CountsNormalizedQueries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	events := []SearchEvent{
		{Query: "Rust", Results: 1, At: base},
		{Query: "  rust ", Results: 1, At: base.Add(time.Minute)},
		{Query: "go", Results: 2, At: base.Add(2 * time.Minute)},
		{Query: "cobol", Results: 0, At: base.Add(3 * time.Minute)},
		{Query: "Web  Audio", Results: 1, At: base.Add(4 * time.Minute)},
	}
	for _, e := range events {
		e.ClientIP = "203.0.113.7"
		e.Category = "all"
		e.Language = "en"
		require.NoError(t, s.Record(ctx, e))
	}

	top, err := s.TopQueries(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "rust", top[0].Query)
	assert.Equal(t, 2, top[0].Count)
	assert.Equal(t, base.Add(time.Minute), top[0].LastSeen)
	// Ties broken by most recent.
	assert.Equal(t, "web audio", top[1].Query)
	assert.Equal(t, "cobol", top[2].Query)

	zero, err := s.ZeroResultQueries(ctx, 0)
	require.NoError(t, err)
	require.Len(t, zero, 1)
	assert.Equal(t, "cobol", zero[0].Query)
}

func TestRecord_StoresHashedIP(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Record(ctx, SearchEvent{Query: "go", ClientIP: "198.51.100.1"}))

	var stored string
	require.NoError(t, s.db.QueryRowContext(ctx, "SELECT hashed_ip FROM searches").Scan(&stored))
	assert.Equal(t, HashIP("198.51.100.1", "test-salt"), stored)
	assert.NotContains(t, stored, "198.51")
	assert.Len(t, stored, 16)
}

func TestHashIP_DependsOnSalt(t *testing.T) {
	assert.Equal(t, HashIP("1.2.3.4", "a"), HashIP("1.2.3.4", "a"))
	assert.NotEqual(t, HashIP("1.2.3.4", "a"), HashIP("1.2.3.4", "b"))
}

func TestOpen_FileBackedPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "analytics.db")
	ctx := context.Background()

	s, err := Open(path, "")
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, SearchEvent{Query: "sqlite"}))
	require.NoError(t, s.Close())

	s, err = Open(path, "")
	require.NoError(t, err)
	defer s.Close()

	top, err := s.TopQueries(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "sqlite", top[0].Query)
}
