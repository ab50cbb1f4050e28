package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flaky fails every call once failing is set.
type flaky struct {
	inner   *Memory
	failing bool
}

func (f *flaky) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.failing {
		return nil, false, errors.New("backend down")
	}
	return f.inner.Get(ctx, key)
}

func (f *flaky) Set(ctx context.Context, key string, data []byte) error {
	if f.failing {
		return errors.New("backend down")
	}
	return f.inner.Set(ctx, key, data)
}

func TestFallbackMirrorsHealthyBackend(t *testing.T) {
	ctx := context.Background()
	primary := &flaky{inner: NewMemory()}
	f := NewFallback(primary)

	require.NoError(t, f.Set(ctx, "k", []byte("v1")))
	data, ok, err := f.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v1", string(data))
	assert.False(t, f.Degraded())
}

func TestFallbackSurvivesBackendFailure(t *testing.T) {
	ctx := context.Background()
	primary := &flaky{inner: NewMemory()}
	f := NewFallback(primary)

	require.NoError(t, f.Set(ctx, "k", []byte("v1")))

	primary.failing = true

	// Reads keep working off the mirrored copy; the error never surfaces.
	data, ok, err := f.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v1", string(data))
	assert.True(t, f.Degraded())

	// Writes land in the in-memory copy.
	require.NoError(t, f.Set(ctx, "k", []byte("v2")))
	data, ok, err = f.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v2", string(data))
}

func TestFallbackWriteFailureKeepsData(t *testing.T) {
	ctx := context.Background()
	primary := &flaky{inner: NewMemory(), failing: true}
	f := NewFallback(primary)

	require.NoError(t, f.Set(ctx, "k", []byte("v1")))
	data, ok, err := f.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v1", string(data))
}

func TestMemoryGetCopiesData(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Set(ctx, "k", []byte("abc")))

	data, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	data[0] = 'x'

	again, _, _ := m.Get(ctx, "k")
	assert.Equal(t, "abc", string(again), "callers must not be able to mutate stored bytes")
}

func TestMemoryMissingKey(t *testing.T) {
	m := NewMemory()
	_, ok, err := m.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
}
