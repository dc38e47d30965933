package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/leave"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/timesheet"
	"github.com/timeflow-hq/timeflow-backend-go/internal/repository/postgresql"
	"github.com/timeflow-hq/timeflow-backend-go/internal/repository/postgresql/postgresql_test"
)

const testShiftHours = 8.0

var testLeaveSetup *postgresql_test.TestDatabaseSetup

func leaveTestInit(t *testing.T, ctx context.Context) {
	if testLeaveSetup == nil {
		var err error
		testLeaveSetup, err = postgresql_test.NewTestDatabase()
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
	}
	require.NoError(t, testLeaveSetup.TruncateAllTables(ctx))
}

func createLeaveTestUser(t *testing.T, ctx context.Context, role string) string {
	var userID string
	username := fmt.Sprintf("user-%d", time.Now().UnixNano())
	err := testLeaveSetup.DB.Pool.QueryRow(ctx, `
		INSERT INTO users (id, username, full_name, role)
		VALUES (gen_random_uuid(), $1, 'Test User', $2)
		RETURNING id
	`, username, role).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func newLeaveTestService() (leave.LeaveService, timesheet.TimeEntryRepository, leave.LeaveRequestRepository) {
	requestRepo := postgresql.NewLeaveRequestRepository(testLeaveSetup.DB)
	entryRepo := postgresql.NewTimeEntryRepository(testLeaveSetup.DB)
	svc := NewLeaveService(testLeaveSetup.DB, requestRepo, entryRepo, testShiftHours)
	return svc, entryRepo, requestRepo
}

func day(offset int) time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, offset)
}

func TestLeaveService_Decide_ApproveGeneratesEntries(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t, ctx)

	userID := createLeaveTestUser(t, ctx, "employee")
	managerID := createLeaveTestUser(t, ctx, "manager")
	svc, entryRepo, _ := newLeaveTestService()

	created, err := svc.Request(ctx, leave.RequestLeaveRequest{
		UserID:   userID,
		Type:     "vacation",
		DateFrom: day(1).Format("2006-01-02"),
		DateTo:   day(3).Format("2006-01-02"),
	})
	require.NoError(t, err)

	err = svc.Decide(ctx, leave.DecideLeaveRequest{
		ApproverID: managerID,
		LeaveID:    created.ID,
		Approve:    true,
	})
	require.NoError(t, err)

	entries, err := entryRepo.ListByLeaveRequest(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.True(t, e.Approved)
		assert.True(t, e.Locked)
		assert.Equal(t, testShiftHours, e.Hours)
		assert.Equal(t, timesheet.EntryTypeLeave, e.EntryType)
		assert.Equal(t, userID, e.UserID)
	}
}

func TestLeaveService_Decide_NarrowedRangeConverges(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t, ctx)

	userID := createLeaveTestUser(t, ctx, "employee")
	managerID := createLeaveTestUser(t, ctx, "manager")
	svc, entryRepo, requestRepo := newLeaveTestService()

	created, err := svc.Request(ctx, leave.RequestLeaveRequest{
		UserID:   userID,
		Type:     "sick",
		DateFrom: day(1).Format("2006-01-02"),
		DateTo:   day(10).Format("2006-01-02"),
	})
	require.NoError(t, err)

	decision := leave.DecideLeaveRequest{ApproverID: managerID, LeaveID: created.ID, Approve: true}
	require.NoError(t, svc.Decide(ctx, decision))

	entries, err := entryRepo.ListByLeaveRequest(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, entries, 10)

	// Narrow the range, then re-approve: the entry set must converge to
	// exactly the new range, nothing more.
	require.NoError(t, requestRepo.UpdateRange(ctx, created.ID, day(1), day(3)))
	require.NoError(t, svc.Decide(ctx, decision))

	entries, err = entryRepo.ListByLeaveRequest(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	dates := make(map[string]bool, len(entries))
	for _, e := range entries {
		dates[e.Date.Format("2006-01-02")] = true
	}
	for offset := 1; offset <= 3; offset++ {
		assert.True(t, dates[day(offset).Format("2006-01-02")])
	}
}

func TestLeaveService_Decide_RejectRemovesEntries(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t, ctx)

	userID := createLeaveTestUser(t, ctx, "employee")
	managerID := createLeaveTestUser(t, ctx, "manager")
	svc, entryRepo, _ := newLeaveTestService()

	created, err := svc.Request(ctx, leave.RequestLeaveRequest{
		UserID:   userID,
		Type:     "personal",
		DateFrom: day(1).Format("2006-01-02"),
		DateTo:   day(2).Format("2006-01-02"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Decide(ctx, leave.DecideLeaveRequest{ApproverID: managerID, LeaveID: created.ID, Approve: true}))

	entries, err := entryRepo.ListByLeaveRequest(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Re-deciding to reject wipes every generated entry.
	require.NoError(t, svc.Decide(ctx, leave.DecideLeaveRequest{ApproverID: managerID, LeaveID: created.ID, Approve: false}))

	entries, err = entryRepo.ListByLeaveRequest(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLeaveService_Request_InvalidRange(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t, ctx)

	userID := createLeaveTestUser(t, ctx, "employee")
	svc, _, _ := newLeaveTestService()

	_, err := svc.Request(ctx, leave.RequestLeaveRequest{
		UserID:   userID,
		Type:     "vacation",
		DateFrom: day(5).Format("2006-01-02"),
		DateTo:   day(1).Format("2006-01-02"),
	})
	assert.ErrorIs(t, err, leave.ErrInvalidRange)
}

func TestLeaveService_QuickRequest_DuplicateGuard(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t, ctx)

	userID := createLeaveTestUser(t, ctx, "employee")
	managerID := createLeaveTestUser(t, ctx, "manager")
	svc, _, _ := newLeaveTestService()

	target := day(2).Format("2006-01-02")
	first, err := svc.QuickRequest(ctx, leave.QuickRequestLeaveRequest{
		UserID: userID,
		Type:   "remote",
		Date:   target,
	})
	require.NoError(t, err)

	// A pending request already covers the date.
	_, err = svc.QuickRequest(ctx, leave.QuickRequestLeaveRequest{
		UserID: userID,
		Type:   "remote",
		Date:   target,
	})
	assert.ErrorIs(t, err, leave.ErrLeaveExists)

	// A rejected request does not block the date.
	require.NoError(t, svc.Decide(ctx, leave.DecideLeaveRequest{ApproverID: managerID, LeaveID: first.ID, Approve: false}))

	_, err = svc.QuickRequest(ctx, leave.QuickRequestLeaveRequest{
		UserID: userID,
		Type:   "remote",
		Date:   target,
	})
	assert.NoError(t, err)
}
