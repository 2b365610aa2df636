// Package di provides dependency injection factories for application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "registry_backend/internal/feature/auth/adapters"
	"registry_backend/internal/feature/auth/usecase"
	"registry_backend/internal/platform/session"
)

// NewSessionRepository picks the session store. With Redis available
// sessions live there and expire on their own; otherwise they are kept
// in the relational database.
func NewSessionRepository(rdb *redis.Client, db *gorm.DB) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}
	return authadapters.NewSessionRepository(db)
}
