package timesheet

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/timesheet"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/policy"
	"github.com/timeflow-hq/timeflow-backend-go/internal/repository/postgresql"
	"github.com/timeflow-hq/timeflow-backend-go/internal/repository/postgresql/postgresql_test"
)

const testAllowBackfillDays = 1

var testTimesheetSetup *postgresql_test.TestDatabaseSetup

func timesheetTestInit(t *testing.T, ctx context.Context) {
	if testTimesheetSetup == nil {
		var err error
		testTimesheetSetup, err = postgresql_test.NewTestDatabase()
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
	}
	require.NoError(t, testTimesheetSetup.TruncateAllTables(ctx))
}

func createTimesheetTestUser(t *testing.T, ctx context.Context, role string) string {
	var userID string
	username := fmt.Sprintf("user-%d", time.Now().UnixNano())
	err := testTimesheetSetup.DB.Pool.QueryRow(ctx, `
		INSERT INTO users (id, username, full_name, role)
		VALUES (gen_random_uuid(), $1, 'Test User', $2)
		RETURNING id
	`, username, role).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func createTimesheetTestProject(t *testing.T, ctx context.Context, ownerID *string) string {
	var projectID string
	code := fmt.Sprintf("PRJ-%d", time.Now().UnixNano())
	err := testTimesheetSetup.DB.Pool.QueryRow(ctx, `
		INSERT INTO projects (id, code, name, owner_id)
		VALUES (gen_random_uuid(), $1, 'Test Project', $2)
		RETURNING id
	`, code, ownerID).Scan(&projectID)
	require.NoError(t, err)
	return projectID
}

func createTimesheetTestTask(t *testing.T, ctx context.Context, assigneeID string) string {
	var taskID string
	err := testTimesheetSetup.DB.Pool.QueryRow(ctx, `
		INSERT INTO tasks (id, title, status, assignee_id, created_by_id, approved)
		VALUES (gen_random_uuid(), 'Test Task', 'in_progress', $1, $1, TRUE)
		RETURNING id
	`, assigneeID).Scan(&taskID)
	require.NoError(t, err)
	return taskID
}

func newTimesheetTestService() timesheet.TimesheetService {
	db := testTimesheetSetup.DB
	return NewTimesheetService(
		postgresql.NewTimeEntryRepository(db),
		postgresql.NewTaskRepository(db),
		postgresql.NewProjectRepository(db),
		postgresql.NewUserRepository(db),
		testAllowBackfillDays,
	)
}

func entryDay(offset int) string {
	return time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, offset).Format("2006-01-02")
}

func TestTimesheetService_AddEntry_BackfillApproval(t *testing.T) {
	ctx := context.Background()
	timesheetTestInit(t, ctx)

	userID := createTimesheetTestUser(t, ctx, "employee")
	svc := newTimesheetTestService()

	tests := []struct {
		name     string
		date     string
		approved bool
	}{
		{"today auto-approves", entryDay(0), true},
		{"yesterday within window", entryDay(-1), true},
		{"old backfill held", entryDay(-10), false},
		{"future date held", entryDay(2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := svc.AddEntry(ctx, timesheet.AddEntryRequest{
				UserID: userID,
				Date:   tt.date,
				Hours:  "2.5",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.approved, entry.Approved)
			assert.Equal(t, 2.5, entry.Hours)
		})
	}
}

func TestTimesheetService_AddEntry_TaskWinsOverProject(t *testing.T) {
	ctx := context.Background()
	timesheetTestInit(t, ctx)

	userID := createTimesheetTestUser(t, ctx, "employee")
	projectID := createTimesheetTestProject(t, ctx, &userID)
	taskID := createTimesheetTestTask(t, ctx, userID)
	svc := newTimesheetTestService()

	entry, err := svc.AddEntry(ctx, timesheet.AddEntryRequest{
		UserID:    userID,
		Date:      entryDay(0),
		Hours:     "4",
		TaskID:    &taskID,
		ProjectID: &projectID,
	})
	require.NoError(t, err)
	require.NotNil(t, entry.TaskID)
	assert.Equal(t, taskID, *entry.TaskID)
	assert.Nil(t, entry.ProjectID)
}

func TestTimesheetService_AddEntry_TaskNotAssigned(t *testing.T) {
	ctx := context.Background()
	timesheetTestInit(t, ctx)

	userID := createTimesheetTestUser(t, ctx, "employee")
	otherID := createTimesheetTestUser(t, ctx, "employee")
	taskID := createTimesheetTestTask(t, ctx, otherID)
	svc := newTimesheetTestService()

	_, err := svc.AddEntry(ctx, timesheet.AddEntryRequest{
		UserID: userID,
		Date:   entryDay(0),
		Hours:  "1",
		TaskID: &taskID,
	})
	assert.ErrorIs(t, err, timesheet.ErrTaskForbidden)
}

func TestTimesheetService_AddEntry_ManagerLogsOnAnyTask(t *testing.T) {
	ctx := context.Background()
	timesheetTestInit(t, ctx)

	employeeID := createTimesheetTestUser(t, ctx, "employee")
	managerID := createTimesheetTestUser(t, ctx, "manager")
	taskID := createTimesheetTestTask(t, ctx, employeeID)
	svc := newTimesheetTestService()

	entry, err := svc.AddEntry(ctx, timesheet.AddEntryRequest{
		UserID: managerID,
		Date:   entryDay(0),
		Hours:  "2",
		TaskID: &taskID,
	})
	require.NoError(t, err)
	require.NotNil(t, entry.TaskID)
	assert.Equal(t, taskID, *entry.TaskID)
}

func TestTimesheetService_AddEntry_InvalidInput(t *testing.T) {
	ctx := context.Background()
	timesheetTestInit(t, ctx)

	userID := createTimesheetTestUser(t, ctx, "employee")
	svc := newTimesheetTestService()

	_, err := svc.AddEntry(ctx, timesheet.AddEntryRequest{UserID: userID, Date: entryDay(0), Hours: "abc"})
	assert.ErrorIs(t, err, policy.ErrInvalidHours)

	_, err = svc.AddEntry(ctx, timesheet.AddEntryRequest{UserID: userID, Date: entryDay(0), Hours: "-2"})
	assert.ErrorIs(t, err, policy.ErrInvalidHours)

	_, err = svc.AddEntry(ctx, timesheet.AddEntryRequest{UserID: userID, Date: "2026-13-40", Hours: "2"})
	assert.ErrorIs(t, err, policy.ErrInvalidDate)
}

func TestTimesheetService_DeleteEntry_OwnershipAndLock(t *testing.T) {
	ctx := context.Background()
	timesheetTestInit(t, ctx)

	userID := createTimesheetTestUser(t, ctx, "employee")
	otherID := createTimesheetTestUser(t, ctx, "employee")
	svc := newTimesheetTestService()

	entry, err := svc.AddEntry(ctx, timesheet.AddEntryRequest{
		UserID: userID,
		Date:   entryDay(0),
		Hours:  "3",
	})
	require.NoError(t, err)

	// Not the owner.
	err = svc.DeleteEntry(ctx, timesheet.DeleteEntryRequest{UserID: otherID, EntryID: entry.ID})
	assert.ErrorIs(t, err, timesheet.ErrForbidden)

	// Locked entries resist owner deletion.
	_, err = testTimesheetSetup.DB.Pool.Exec(ctx, `UPDATE time_entries SET locked = TRUE WHERE id = $1`, entry.ID)
	require.NoError(t, err)
	err = svc.DeleteEntry(ctx, timesheet.DeleteEntryRequest{UserID: userID, EntryID: entry.ID})
	assert.ErrorIs(t, err, timesheet.ErrEntryLocked)

	// Unlocked again, the owner may delete.
	_, err = testTimesheetSetup.DB.Pool.Exec(ctx, `UPDATE time_entries SET locked = FALSE WHERE id = $1`, entry.ID)
	require.NoError(t, err)
	err = svc.DeleteEntry(ctx, timesheet.DeleteEntryRequest{UserID: userID, EntryID: entry.ID})
	assert.NoError(t, err)
}

func TestTimesheetService_ListAllowedProjects(t *testing.T) {
	ctx := context.Background()
	timesheetTestInit(t, ctx)

	employeeID := createTimesheetTestUser(t, ctx, "employee")
	managerID := createTimesheetTestUser(t, ctx, "manager")
	ownedID := createTimesheetTestProject(t, ctx, &employeeID)
	createTimesheetTestProject(t, ctx, nil)
	svc := newTimesheetTestService()

	// Employees only see projects they own or belong to.
	mine, err := svc.ListAllowedProjects(ctx, employeeID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, ownedID, mine[0].ID)

	// Managers see every active project.
	all, err := svc.ListAllowedProjects(ctx, managerID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
