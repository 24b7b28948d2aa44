package catalog

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/slicelab/pizzeria-backend/pkg/redis"
)

// SnapshotCache stores built snapshots between requests. The storefront treats
// the catalog as immutable for a session, so entries default to no expiry.
type SnapshotCache interface {
	Get(ctx context.Context, categoryID int64) (*Snapshot, bool)
	Put(ctx context.Context, snap *Snapshot)
}

type redisSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSnapshotCache wraps the shared redis client. A zero ttl means
// entries never expire.
func NewRedisSnapshotCache(client *redis.Client, ttl time.Duration) SnapshotCache {
	return &redisSnapshotCache{client: client, ttl: ttl}
}

func (c *redisSnapshotCache) Get(ctx context.Context, categoryID int64) (*Snapshot, bool) {
	raw, err := c.client.Get(ctx, c.client.SnapshotKey(categoryID))
	if err != nil {
		if err != goredis.Nil {
			// A cache failure degrades to a DB read, never to an error.
			return nil, false
		}
		return nil, false
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, false
	}
	return &snap, true
}

func (c *redisSnapshotCache) Put(ctx context.Context, snap *Snapshot) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.client.SnapshotKey(snap.CategoryID), string(payload), c.ttl)
}
