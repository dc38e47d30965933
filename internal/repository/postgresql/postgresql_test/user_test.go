package postgresql_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/user"
	"github.com/timeflow-hq/timeflow-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

var testRepoSetup *TestDatabaseSetup

func repoTestInit(t *testing.T, ctx context.Context) {
	if testRepoSetup == nil {
		var err error
		testRepoSetup, err = NewTestDatabase()
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
	}
	require.NoError(t, testRepoSetup.TruncateAllTables(ctx))
}

func uniqueUsername(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repoTestInit(t, ctx)
	repo := postgresql.NewUserRepository(testRepoSetup.DB)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	username := uniqueUsername("create")
	created, err := repo.Create(ctx, user.User{
		Username:     username,
		FullName:     "Alice Example",
		Email:        username + "@example.com",
		Department:   "Engineering",
		Role:         user.RoleEmployee,
		IsActive:     true,
		PasswordHash: string(hash),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	byUsername, err := repo.GetByUsername(ctx, username)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byUsername.ID)
	assert.Equal(t, "Alice Example", byUsername.FullName)
	assert.Equal(t, user.RoleEmployee, byUsername.Role)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, username, byID.Username)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repoTestInit(t, ctx)
	repo := postgresql.NewUserRepository(testRepoSetup.DB)

	username := uniqueUsername("dup")
	_, err := repo.Create(ctx, user.User{Username: username, Role: user.RoleEmployee, IsActive: true})
	require.NoError(t, err)

	_, err = repo.Create(ctx, user.User{Username: username, Role: user.RoleEmployee, IsActive: true})
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestUserRepository_GetByUsername_NotFound(t *testing.T) {
	ctx := context.Background()
	repoTestInit(t, ctx)
	repo := postgresql.NewUserRepository(testRepoSetup.DB)

	_, err := repo.GetByUsername(ctx, "does-not-exist")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	repoTestInit(t, ctx)
	repo := postgresql.NewUserRepository(testRepoSetup.DB)

	username := uniqueUsername("reset")
	created, err := repo.Create(ctx, user.User{Username: username, Role: user.RoleEmployee, IsActive: true})
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("new-password"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, repo.UpdatePassword(ctx, created.ID, string(hash)))

	updated, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-password")))

	assert.ErrorIs(t, repo.UpdatePassword(ctx, "00000000-0000-0000-0000-000000000000", string(hash)), user.ErrUserNotFound)
}

func TestUserRepository_ListActive(t *testing.T) {
	ctx := context.Background()
	repoTestInit(t, ctx)
	repo := postgresql.NewUserRepository(testRepoSetup.DB)

	active, err := repo.Create(ctx, user.User{Username: uniqueUsername("active"), Role: user.RoleEmployee, IsActive: true})
	require.NoError(t, err)
	_, err = repo.Create(ctx, user.User{Username: uniqueUsername("inactive"), Role: user.RoleEmployee, IsActive: false})
	require.NoError(t, err)

	users, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, active.ID, users[0].ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
