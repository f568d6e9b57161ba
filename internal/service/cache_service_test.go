package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheServiceRoundTrip(t *testing.T) {
	svc := NewCacheService(newFakeCacheRepo(), nil, time.Minute, nil, true)

	require.NoError(t, svc.Set(context.Background(), "k", map[string]int{"a": 1}, 0))

	var dest map[string]int
	hit, err := svc.Get(context.Background(), "k", &dest)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, dest["a"])
}

func TestCacheServiceMiss(t *testing.T) {
	svc := NewCacheService(newFakeCacheRepo(), nil, time.Minute, nil, true)

	var dest map[string]int
	hit, err := svc.Get(context.Background(), "absent", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheServiceDisabled(t *testing.T) {
	repo := newFakeCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, nil, false)

	require.NoError(t, svc.Set(context.Background(), "k", 1, 0))
	assert.Empty(t, repo.store)

	hit, err := svc.Get(context.Background(), "k", new(int))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.False(t, svc.Enabled())
}

func TestCacheServiceNilReceiver(t *testing.T) {
	var svc *CacheService
	assert.False(t, svc.Enabled())

	hit, err := svc.Get(context.Background(), "k", new(int))
	require.NoError(t, err)
	assert.False(t, hit)
	require.NoError(t, svc.Set(context.Background(), "k", 1, 0))
	require.NoError(t, svc.Invalidate(context.Background(), "k"))
}

func TestCacheServiceInvalidateDeletesOnlyGivenKeys(t *testing.T) {
	repo := newFakeCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	require.NoError(t, svc.Set(context.Background(), "a", 1, 0))
	require.NoError(t, svc.Set(context.Background(), "b", 2, 0))

	require.NoError(t, svc.Invalidate(context.Background(), "a"))
	assert.NotContains(t, repo.store, "a")
	assert.Contains(t, repo.store, "b")
}

func TestCacheServiceInvalidateError(t *testing.T) {
	repo := newFakeCacheRepo()
	repo.deleteErr = errors.New("redis down")
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	assert.Error(t, svc.Invalidate(context.Background(), "a"))
}
