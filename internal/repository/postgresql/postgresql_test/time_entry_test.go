package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/timesheet"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/user"
	"github.com/timeflow-hq/timeflow-backend-go/internal/repository/postgresql"
)

func createEntryTestUser(t *testing.T, ctx context.Context) string {
	repo := postgresql.NewUserRepository(testRepoSetup.DB)
	created, err := repo.Create(ctx, user.User{
		Username: uniqueUsername("entry-user"),
		Role:     user.RoleEmployee,
		IsActive: true,
	})
	require.NoError(t, err)
	return created.ID
}

func TestTimeEntryRepository_Create_GeneratesID(t *testing.T) {
	ctx := context.Background()
	repoTestInit(t, ctx)
	repo := postgresql.NewTimeEntryRepository(testRepoSetup.DB)
	userID := createEntryTestUser(t, ctx)

	entry, err := repo.Create(ctx, timesheet.TimeEntry{
		UserID:    userID,
		Date:      time.Now().UTC().Truncate(24 * time.Hour),
		Hours:     4.5,
		Notes:     "morning work",
		EntryType: timesheet.EntryTypeWork,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)

	loaded, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, loaded.Hours)
	assert.Equal(t, timesheet.EntryTypeWork, loaded.EntryType)
	assert.False(t, loaded.Approved)
	assert.False(t, loaded.Locked)
}

func TestTimeEntryRepository_Create_KeepsProvidedID(t *testing.T) {
	ctx := context.Background()
	repoTestInit(t, ctx)
	repo := postgresql.NewTimeEntryRepository(testRepoSetup.DB)
	userID := createEntryTestUser(t, ctx)

	id := uuid.NewString()
	entry, err := repo.Create(ctx, timesheet.TimeEntry{
		ID:        id,
		UserID:    userID,
		Date:      time.Now().UTC().Truncate(24 * time.Hour),
		Hours:     8,
		EntryType: timesheet.EntryTypeLeave,
		Approved:  true,
		Locked:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, id, entry.ID)
}

func TestTimeEntryRepository_Refresh(t *testing.T) {
	ctx := context.Background()
	repoTestInit(t, ctx)
	repo := postgresql.NewTimeEntryRepository(testRepoSetup.DB)
	userID := createEntryTestUser(t, ctx)

	entry, err := repo.Create(ctx, timesheet.TimeEntry{
		UserID:    userID,
		Date:      time.Now().UTC().Truncate(24 * time.Hour),
		Hours:     2,
		EntryType: timesheet.EntryTypeLeave,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Refresh(ctx, entry.ID, 8, "Vacation", true, true))

	refreshed, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 8.0, refreshed.Hours)
	assert.Equal(t, "Vacation", refreshed.Notes)
	assert.True(t, refreshed.Approved)
	assert.True(t, refreshed.Locked)

	assert.ErrorIs(t, repo.Refresh(ctx, uuid.NewString(), 8, "", true, true), timesheet.ErrEntryNotFound)
}

func TestTimeEntryRepository_LockOlderThan(t *testing.T) {
	ctx := context.Background()
	repoTestInit(t, ctx)
	repo := postgresql.NewTimeEntryRepository(testRepoSetup.DB)
	userID := createEntryTestUser(t, ctx)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	old, err := repo.Create(ctx, timesheet.TimeEntry{
		UserID: userID, Date: today.AddDate(0, 0, -30), Hours: 8,
		EntryType: timesheet.EntryTypeWork, Approved: true,
	})
	require.NoError(t, err)
	unapproved, err := repo.Create(ctx, timesheet.TimeEntry{
		UserID: userID, Date: today.AddDate(0, 0, -30), Hours: 8,
		EntryType: timesheet.EntryTypeWork,
	})
	require.NoError(t, err)
	recent, err := repo.Create(ctx, timesheet.TimeEntry{
		UserID: userID, Date: today, Hours: 8,
		EntryType: timesheet.EntryTypeWork, Approved: true,
	})
	require.NoError(t, err)

	locked, err := repo.LockOlderThan(ctx, today.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, int64(1), locked)

	oldEntry, err := repo.GetByID(ctx, old.ID)
	require.NoError(t, err)
	assert.True(t, oldEntry.Locked)

	// Unapproved and in-period entries stay open.
	for _, id := range []string{unapproved.ID, recent.ID} {
		e, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.False(t, e.Locked)
	}

	// Second run finds nothing left to lock.
	locked, err = repo.LockOlderThan(ctx, today.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, int64(0), locked)
}
