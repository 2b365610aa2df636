package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"registry_backend/internal/feature/registry/adapters"
	"registry_backend/internal/feature/registry/usecase"
	"registry_backend/internal/platform/cache"
)

// NewProfessionalRepository builds the GORM repository and wraps it in a
// read-through Redis cache. A nil Redis client leaves the cache layer as
// a passthrough.
func NewProfessionalRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration) usecase.ProfessionalRepository {
	repo := adapters.NewProfessionalRepository(db)
	return cache.NewCachingProfessionalRepository(rdb, ttl, repo, "professionals")
}
