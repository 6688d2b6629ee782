package repositories

import (
	"context"
	"log"
	"sync"
	"time"

	"schemaflow/internal/models"
)

// CatalogFetcher supplies fresh catalog snapshots.
type CatalogFetcher interface {
	FetchSnapshot(ctx context.Context) (*models.Snapshot, error)
}

// SnapshotCache hands out a shared, read-only snapshot and refetches it
// once the TTL has elapsed. A refresh swaps the whole snapshot pointer;
// a snapshot is never mutated after it has been handed out.
type SnapshotCache struct {
	fetcher CatalogFetcher
	ttl     time.Duration

	mu        sync.RWMutex
	snap      *models.Snapshot
	fetchedAt time.Time
}

func NewSnapshotCache(fetcher CatalogFetcher, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{fetcher: fetcher, ttl: ttl}
}

// Snapshot returns the cached snapshot, refreshing it when stale.
func (c *SnapshotCache) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	c.mu.RLock()
	if c.fresh() {
		snap := c.snap
		c.mu.RUnlock()
		return snap, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fresh() {
		return c.snap, nil
	}

	log.Println("Refreshing catalog snapshot")
	snap, err := c.fetcher.FetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	c.snap = snap
	c.fetchedAt = time.Now()
	return snap, nil
}

func (c *SnapshotCache) fresh() bool {
	return c.snap != nil && time.Since(c.fetchedAt) < c.ttl
}
