// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"registry_backend/internal/feature/registry/domain/entity"
	"registry_backend/internal/feature/registry/usecase"
)

// CachingProfessionalRepository decorates a ProfessionalRepository with
// Redis caching of list and search results. Every mutation invalidates the
// whole namespace before returning, so reads behind the cache never serve
// a register older than the last committed write.
type CachingProfessionalRepository struct {
	inner     usecase.ProfessionalRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check to ensure the decorator implements ProfessionalRepository.
var _ usecase.ProfessionalRepository = (*CachingProfessionalRepository)(nil)

// NewCachingProfessionalRepository decorates a ProfessionalRepository with
// Redis caching. If ttl is 0, it defaults to 5 minutes. If namespace is
// empty, it uses "professionals". A nil client disables caching entirely.
func NewCachingProfessionalRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ProfessionalRepository, namespace string) *CachingProfessionalRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "professionals"
	}
	return &CachingProfessionalRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindAll returns the full register, checking the cache first.
func (c *CachingProfessionalRepository) FindAll(ctx context.Context) ([]entity.Professional, error) {
	return c.cached(ctx, c.namespace+":all", c.inner.FindAll)
}

// Search returns matching records, with one cache entry per term.
func (c *CachingProfessionalRepository) Search(ctx context.Context, term string) ([]entity.Professional, error) {
	key := c.namespace + ":search:" + safe(strings.ToLower(term))
	return c.cached(ctx, key, func(ctx context.Context) ([]entity.Professional, error) {
		return c.inner.Search(ctx, term)
	})
}

// FindByID always reads through: single-record lookups feed mutations and
// must see current state.
func (c *CachingProfessionalRepository) FindByID(ctx context.Context, id uint) (*entity.Professional, error) {
	return c.inner.FindByID(ctx, id)
}

// Create persists through the inner repository and invalidates the cache.
func (c *CachingProfessionalRepository) Create(ctx context.Context, p *entity.Professional) error {
	if err := c.inner.Create(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Update persists through the inner repository and invalidates the cache.
func (c *CachingProfessionalRepository) Update(ctx context.Context, p *entity.Professional) error {
	if err := c.inner.Update(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Delete removes through the inner repository; the cache is invalidated
// only when a row actually went away.
func (c *CachingProfessionalRepository) Delete(ctx context.Context, id uint) (bool, error) {
	existed, err := c.inner.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if existed {
		c.invalidate(ctx)
	}
	return existed, nil
}

// cached serves key from Redis when possible, otherwise loads and stores.
// Cache failures fall back to the loader; they never fail the request.
func (c *CachingProfessionalRepository) cached(ctx context.Context, key string, load func(context.Context) ([]entity.Professional, error)) ([]entity.Professional, error) {
	if c.rdb == nil {
		return load(ctx)
	}

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Professional
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// invalidate drops every cached list and search result. Best effort:
// a failed invalidation only means a stale read until the TTL runs out.
func (c *CachingProfessionalRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*")
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingProfessionalRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
