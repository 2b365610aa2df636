package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"registry_backend/internal/feature/auth/domain"
	"registry_backend/internal/feature/auth/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError matches the production connection so unique-constraint
// violations surface as gorm.ErrDuplicatedKey.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{}, &SessionModel{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		user := &entity.User{
			Username: "alice",
			Password: "hashed_password",
			FullName: "Alice Smith",
			IsStaff:  true,
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate username returns ErrUsernameTaken", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		first := &entity.User{Username: "alice", Password: "p1", FullName: "Alice"}
		require.NoError(t, repo.Create(context.Background(), first), "failed to create first user")

		second := &entity.User{Username: "alice", Password: "p2", FullName: "Impostor"}
		err := repo.Create(context.Background(), second)

		assert.ErrorIs(t, err, domain.ErrUsernameTaken, "should return ErrUsernameTaken")
	})
}

func TestUserGorm_FindByUsername(t *testing.T) {
	t.Run("finds an existing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		expected := &entity.User{Username: "bob", Password: "hash", FullName: "Bob Jones"}
		require.NoError(t, repo.Create(context.Background(), expected), "failed to create test data")

		found, err := repo.FindByUsername(context.Background(), "bob")

		assert.NoError(t, err, "failed to find user")
		require.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, "Bob Jones", found.FullName, "full name does not match")
	})

	t.Run("unknown username returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		found, err := repo.FindByUsername(context.Background(), "nobody")

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, domain.ErrUserNotFound, "should return ErrUserNotFound")
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		require.NoError(t, repo.Create(context.Background(), &entity.User{Username: "carol", Password: "hash", FullName: "Carol"}))

		_, err := repo.FindByUsername(context.Background(), "Carol")

		assert.ErrorIs(t, err, domain.ErrUserNotFound, "usernames should not match case-insensitively")
	})
}

func TestUserGorm_FindByID(t *testing.T) {
	t.Run("finds the right user among several", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		users := []*entity.User{
			{Username: "user1", Password: "p1", FullName: "One"},
			{Username: "user2", Password: "p2", FullName: "Two"},
			{Username: "user3", Password: "p3", FullName: "Three"},
		}
		for _, u := range users {
			require.NoError(t, repo.Create(context.Background(), u), "failed to create test data")
		}

		found, err := repo.FindByID(context.Background(), users[1].ID)

		assert.NoError(t, err, "failed to find user")
		require.NotNil(t, found, "user is nil")
		assert.Equal(t, "user2", found.Username, "username does not match")
	})

	t.Run("unknown ID returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, domain.ErrUserNotFound, "should return ErrUserNotFound")
	})
}
