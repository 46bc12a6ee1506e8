package utils

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// CacheInvalidator drops cached GET responses after a write so list views
// never serve a deleted or missing record for the cache TTL.
type CacheInvalidator struct{ rdb *redis.Client }

func NewCacheInvalidator(rdb *redis.Client) *CacheInvalidator { return &CacheInvalidator{rdb} }

// Purge deletes every cached response in the given namespace
// ("events", "guests", "budgets"). Keys embed a sha1 of the request, so a
// targeted single-item delete is not possible; the whole namespace goes.
func (ci *CacheInvalidator) Purge(ctx context.Context, namespace string) {
	iter := ci.rdb.Scan(ctx, 0, "cache:"+namespace+":*", 0).Iterator()
	for iter.Next(ctx) {
		_ = ci.rdb.Del(ctx, iter.Val()).Err()
	}
}
