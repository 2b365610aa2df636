// Package db opens the PostgreSQL connection used by every repository.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"registry_backend/internal/config"
	authadapters "registry_backend/internal/feature/auth/adapters"
	authentity "registry_backend/internal/feature/auth/domain/entity"
	registryentity "registry_backend/internal/feature/registry/domain/entity"
)

// connectTimeout bounds the startup retry loop.
const connectTimeout = 60 * time.Second

// OpenDB connects to PostgreSQL, retrying until the deadline so the
// service survives a database that comes up slower than the process.
// TranslateError is enabled so duplicate-key violations surface as
// gorm.ErrDuplicatedKey regardless of driver.
func OpenDB(cfg config.DBConfig) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(connectTimeout)
	for {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", connectTimeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(
			&authentity.User{},
			&authadapters.SessionModel{},
			&registryentity.Professional{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return db, nil
}
