package report

import (
	"context"
	"fmt"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheObserver counts cache hits and misses.
type cacheObserver interface {
	CacheHit()
	CacheMiss()
}

// TrackingStartLoader resolves the tracking start of a user from storage.
type TrackingStartLoader func(ctx context.Context, userID uuid.UUID) (*civil.Date, error)

// trackingStart is a cached lookup result; a nil date is a cached "nothing
// tracked yet".
type trackingStart struct {
	date *civil.Date
}

// TrackingStartCache memoizes each user's first tracked day. Entries must be
// forgotten whenever the user's events or settings change.
type TrackingStartCache struct {
	entries *lru.Cache[uuid.UUID, trackingStart]
	obs     cacheObserver
}

// NewTrackingStartCache creates a cache holding at most size users. obs may
// be nil.
func NewTrackingStartCache(size int, obs cacheObserver) (*TrackingStartCache, error) {
	entries, err := lru.New[uuid.UUID, trackingStart](size)
	if err != nil {
		return nil, fmt.Errorf("create tracking start cache: %w", err)
	}
	return &TrackingStartCache{entries: entries, obs: obs}, nil
}

// Get returns the cached tracking start, calling load on a miss. Load errors
// are not cached.
func (c *TrackingStartCache) Get(ctx context.Context, userID uuid.UUID, load TrackingStartLoader) (*civil.Date, error) {
	if v, ok := c.entries.Get(userID); ok {
		c.hit()
		return copyDate(v.date), nil
	}
	c.miss()

	date, err := load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load tracking start: %w", err)
	}
	c.entries.Add(userID, trackingStart{date: copyDate(date)})
	return date, nil
}

// Forget drops the cached value of one user.
func (c *TrackingStartCache) Forget(userID uuid.UUID) {
	c.entries.Remove(userID)
}

// Reset drops every cached value.
func (c *TrackingStartCache) Reset() {
	c.entries.Purge()
}

// Len returns the number of cached users.
func (c *TrackingStartCache) Len() int {
	return c.entries.Len()
}

func (c *TrackingStartCache) hit() {
	if c.obs != nil {
		c.obs.CacheHit()
	}
}

func (c *TrackingStartCache) miss() {
	if c.obs != nil {
		c.obs.CacheMiss()
	}
}

func copyDate(d *civil.Date) *civil.Date {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
