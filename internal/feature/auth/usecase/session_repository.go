package usecase

import (
	"context"
	"time"

	"registry_backend/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the durable session store. Two
// implementations exist: a sessions table (adapters) and Redis
// (platform/session); both survive process restarts.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its ID (the cookie value).
	// Returns ErrSessionNotFound when absent.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Extend moves the expiry of an active session forward.
	Extend(ctx context.Context, id string, expiresAt time.Time) error

	// Revoke marks a session as revoked by setting RevokedAt.
	// Returns ErrSessionNotFound when absent.
	Revoke(ctx context.Context, id string) error

	// CountByUserID returns the number of active sessions for a user.
	CountByUserID(ctx context.Context, userID uint) (int64, error)

	// DeleteOldestByUserID deletes the oldest active session for a user.
	DeleteOldestByUserID(ctx context.Context, userID uint) error

	// DeleteExpired removes expired sessions from storage, returning how
	// many were deleted.
	DeleteExpired(ctx context.Context) (int64, error)
}
