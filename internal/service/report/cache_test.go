package report

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObserver struct {
	hits, misses int
}

func (o *countingObserver) CacheHit()  { o.hits++ }
func (o *countingObserver) CacheMiss() { o.misses++ }

func TestTrackingStartCache_GetMemoizes(t *testing.T) {
	obs := &countingObserver{}
	cache, err := NewTrackingStartCache(4, obs)
	require.NoError(t, err)

	userID := uuid.New()
	loads := 0
	load := func(ctx context.Context, id uuid.UUID) (*civil.Date, error) {
		loads++
		return &civil.Date{Year: 2024, Month: 1, Day: 5}, nil
	}

	first, err := cache.Get(context.Background(), userID, load)
	require.NoError(t, err)
	second, err := cache.Get(context.Background(), userID, load)
	require.NoError(t, err)

	assert.Equal(t, 1, loads)
	assert.Equal(t, *first, *second)
	assert.Equal(t, 1, obs.hits)
	assert.Equal(t, 1, obs.misses)

	second.Day = 20
	third, err := cache.Get(context.Background(), userID, load)
	require.NoError(t, err)
	assert.Equal(t, 5, third.Day, "callers cannot mutate the cached value")
}

func TestTrackingStartCache_CachesAbsence(t *testing.T) {
	cache, err := NewTrackingStartCache(4, nil)
	require.NoError(t, err)

	loads := 0
	load := func(ctx context.Context, id uuid.UUID) (*civil.Date, error) {
		loads++
		return nil, nil
	}

	userID := uuid.New()
	for range 3 {
		got, err := cache.Get(context.Background(), userID, load)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
	assert.Equal(t, 1, loads)
}

func TestTrackingStartCache_ErrorsAreNotCached(t *testing.T) {
	cache, err := NewTrackingStartCache(4, nil)
	require.NoError(t, err)

	userID := uuid.New()
	fail := true
	load := func(ctx context.Context, id uuid.UUID) (*civil.Date, error) {
		if fail {
			return nil, errors.New("db down")
		}
		return &civil.Date{Year: 2024, Month: 2, Day: 1}, nil
	}

	_, err = cache.Get(context.Background(), userID, load)
	require.Error(t, err)
	assert.Equal(t, 0, cache.Len())

	fail = false
	got, err := cache.Get(context.Background(), userID, load)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Day)
}

func TestTrackingStartCache_ForgetAndReset(t *testing.T) {
	cache, err := NewTrackingStartCache(4, nil)
	require.NoError(t, err)

	load := func(ctx context.Context, id uuid.UUID) (*civil.Date, error) {
		return &civil.Date{Year: 2024, Month: 2, Day: 1}, nil
	}
	a, b := uuid.New(), uuid.New()
	_, _ = cache.Get(context.Background(), a, load)
	_, _ = cache.Get(context.Background(), b, load)
	require.Equal(t, 2, cache.Len())

	cache.Forget(a)
	assert.Equal(t, 1, cache.Len())

	cache.Reset()
	assert.Equal(t, 0, cache.Len())
}

func TestTrackingStartCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache, err := NewTrackingStartCache(2, nil)
	require.NoError(t, err)

	load := func(ctx context.Context, id uuid.UUID) (*civil.Date, error) {
		return nil, nil
	}
	for range 5 {
		_, _ = cache.Get(context.Background(), uuid.New(), load)
	}
	assert.Equal(t, 2, cache.Len())
}

func TestNewTrackingStartCache_InvalidSize(t *testing.T) {
	_, err := NewTrackingStartCache(0, nil)
	assert.Error(t, err)
}
