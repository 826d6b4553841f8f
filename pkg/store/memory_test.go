package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetMissingKey(t *testing.T) {
	m := NewMemory()

	v, ok, err := m.Get(context.Background(), "local:nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestMemorySetGetRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "local:k", "v1"))
	v, ok, err := m.Get(ctx, "local:k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v1", v)

	// A second write fully overwrites the first.
	require.NoError(t, m.Set(ctx, "local:k", "v2"))
	v, ok, err = m.Get(ctx, "local:k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
}

func TestMemoryWatchFiresPerChange(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var got []string
	unsubscribe, err := m.Watch("local:k", func(v string) {
		got = append(got, v)
	})
	require.NoError(t, err)
	defer unsubscribe()

	require.NoError(t, m.Set(ctx, "local:k", "a"))
	require.NoError(t, m.Set(ctx, "local:k", "b"))
	assert.Equal(t, []string{"a", "b"}, got)

	// Writing the same value again is not a change.
	require.NoError(t, m.Set(ctx, "local:k", "b"))
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestMemoryWatchOtherKeyIgnored(t *testing.T) {
	m := NewMemory()

	calls := 0
	unsubscribe, err := m.Watch("local:k", func(string) { calls++ })
	require.NoError(t, err)
	defer unsubscribe()

	require.NoError(t, m.Set(context.Background(), "local:other", "x"))
	assert.Zero(t, calls)
}

func TestMemoryUnsubscribeStopsCallbacks(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	calls := 0
	unsubscribe, err := m.Watch("local:k", func(string) { calls++ })
	require.NoError(t, err)

	require.NoError(t, m.Set(ctx, "local:k", "a"))
	unsubscribe()
	require.NoError(t, m.Set(ctx, "local:k", "b"))
	assert.Equal(t, 1, calls)

	// Idempotent: calling again is safe.
	unsubscribe()
	require.NoError(t, m.Set(ctx, "local:k", "c"))
	assert.Equal(t, 1, calls)
}

func TestMemoryMultipleWatchersAllNotified(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first, second := 0, 0
	u1, err := m.Watch("local:k", func(string) { first++ })
	require.NoError(t, err)
	defer u1()
	u2, err := m.Watch("local:k", func(string) { second++ })
	require.NoError(t, err)
	defer u2()

	require.NoError(t, m.Set(ctx, "local:k", "a"))
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)

	u1()
	require.NoError(t, m.Set(ctx, "local:k", "b"))
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestMemoryCancelledContext(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := m.Get(ctx, "local:k")
	assert.Error(t, err)
	assert.Error(t, m.Set(ctx, "local:k", "v"))
}
