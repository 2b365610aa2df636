package main

import (
	"context"
	"log/slog"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"registry_backend/internal/app/di"
	"registry_backend/internal/app/router"
	"registry_backend/internal/config"
	authadapters "registry_backend/internal/feature/auth/adapters"
	authhandler "registry_backend/internal/feature/auth/transport/handler"
	authusecase "registry_backend/internal/feature/auth/usecase"
	registryhandler "registry_backend/internal/feature/registry/transport/handler"
	registryusecase "registry_backend/internal/feature/registry/usecase"
	"registry_backend/internal/platform/db"
	platformredis "registry_backend/internal/platform/redis"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	gormDB, err := db.OpenDB(cfg.DB)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	// Redis is optional: without it sessions fall back to the database
	// and the registry cache becomes a passthrough.
	var rdb *redisv9.Client
	if cfg.Redis.Addr != "" {
		if client, err := platformredis.NewRedisClient(cfg.Redis); err != nil {
			slog.Warn("redis unavailable, running without cache", "error", err)
		} else {
			rdb = client
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close redis client", "error", err)
				}
			}()
		}
	}

	// Repositories
	userRepo := authadapters.NewUserRepository(gormDB)
	sessionRepo := di.NewSessionRepository(rdb, gormDB)
	professionalRepo := di.NewProfessionalRepository(gormDB, rdb, cfg.Redis.CacheTTL)

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, cfg.Session.TTL)
	registryUC := registryusecase.NewRegistryUsecase(professionalRepo)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC, cfg.Session.TTL)
	professionalH := registryhandler.NewProfessionalHandler(registryUC)

	r := router.NewRouter(authH, professionalH, authUC)

	slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
