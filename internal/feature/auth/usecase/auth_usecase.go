package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"registry_backend/internal/feature/auth/domain"
	"registry_backend/internal/feature/auth/domain/entity"
)

const (
	// minUsernameLength is the minimum number of characters in a username.
	minUsernameLength = 3

	// minPasswordLength is the minimum number of characters in a password.
	minPasswordLength = 6

	// maxSessionsPerUser caps concurrent sessions per account; the oldest
	// one is evicted when a new login would exceed it.
	maxSessionsPerUser = 5

	// defaultSessionTTL applies when no TTL is configured.
	defaultSessionTTL = 7 * 24 * time.Hour
)

// dummyHash is compared against when the username does not exist, so that
// login latency does not reveal whether an account is present.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user accounts.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrUsernameTaken when the
	// username is already in use.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername returns the user with the given login name, or
	// domain.ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID returns the user with the given ID, or domain.ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// SessionMeta carries request metadata recorded on newly issued sessions.
type SessionMeta struct {
	UserAgent string
	IPAddress string
}

// AuthUsecase implements registration, login, logout, and session
// resolution over durable server-side sessions.
type AuthUsecase struct {
	users      UserRepository
	sessions   SessionRepository
	sessionTTL time.Duration
}

// NewAuthUsecase creates a new AuthUsecase. A non-positive sessionTTL
// falls back to one week.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, sessionTTL time.Duration) *AuthUsecase {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	return &AuthUsecase{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Register creates a new account and signs it in immediately. The returned
// session is already persisted; the transport layer only has to set the
// cookie.
func (u *AuthUsecase) Register(ctx context.Context, username, password, fullName string, isStaff bool, meta SessionMeta) (*entity.User, *entity.Session, error) {
	if len(username) < minUsernameLength {
		return nil, nil, fmt.Errorf("username must be at least %d characters long", minUsernameLength)
	}
	if len(password) < minPasswordLength {
		return nil, nil, fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username: username,
		Password: string(hashed),
		FullName: fullName,
		IsStaff:  isStaff,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	session, err := u.issueSession(ctx, user.ID, meta)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Login authenticates a user and starts a session. The bcrypt comparison
// runs even for unknown usernames so response timing does not leak which
// accounts exist, and the same error covers both failure modes.
func (u *AuthUsecase) Login(ctx context.Context, username, password string, meta SessionMeta) (*entity.User, *entity.Session, error) {
	user, err := u.users.FindByUsername(ctx, username)

	hash := dummyHash
	if err == nil {
		hash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	session, err := u.issueSession(ctx, user.ID, meta)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Logout revokes the given session. Unknown, empty, and already revoked
// session ids are all treated as success so logging out twice is not an
// error.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := u.sessions.Revoke(ctx, sessionID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// Resolve maps a session cookie value to its user. Missing, expired, and
// revoked sessions all resolve to ErrSessionNotFound; the caller decides
// whether an anonymous request is acceptable for the operation.
func (u *AuthUsecase) Resolve(ctx context.Context, sessionID string) (*entity.User, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}
	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsValid() {
		return nil, ErrSessionNotFound
	}

	// Sliding renewal: a session past its half-life gets a full TTL again.
	// Best effort; a failed extension does not fail the request.
	if time.Until(session.ExpiresAt) < u.sessionTTL/2 {
		_ = u.sessions.Extend(ctx, session.ID, time.Now().Add(u.sessionTTL))
	}

	return u.users.FindByID(ctx, session.UserID)
}

// issueSession creates a fresh session for the user, evicting the oldest
// one when the per-user cap is reached.
func (u *AuthUsecase) issueSession(ctx context.Context, userID uint, meta SessionMeta) (*entity.Session, error) {
	// Opportunistic cleanup; there is no background job.
	_, _ = u.sessions.DeleteExpired(ctx)

	if count, err := u.sessions.CountByUserID(ctx, userID); err == nil && count >= maxSessionsPerUser {
		_ = u.sessions.DeleteOldestByUserID(ctx, userID)
	}

	id, err := newSessionID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        id,
		UserID:    userID,
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// newSessionID returns a 64-character hex token from 32 random bytes.
func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
