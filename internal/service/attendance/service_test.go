package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/attendance"
	"github.com/timeflow-hq/timeflow-backend-go/internal/repository/postgresql"
	"github.com/timeflow-hq/timeflow-backend-go/internal/repository/postgresql/postgresql_test"
)

var testAttendanceSetup *postgresql_test.TestDatabaseSetup

func attendanceTestInit(t *testing.T, ctx context.Context) {
	if testAttendanceSetup == nil {
		var err error
		testAttendanceSetup, err = postgresql_test.NewTestDatabase()
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
	}
	require.NoError(t, testAttendanceSetup.TruncateAllTables(ctx))
}

func createAttendanceTestUser(t *testing.T, ctx context.Context) string {
	var userID string
	username := fmt.Sprintf("user-%d", time.Now().UnixNano())
	err := testAttendanceSetup.DB.Pool.QueryRow(ctx, `
		INSERT INTO users (id, username, full_name, role)
		VALUES (gen_random_uuid(), $1, 'Test User', 'employee')
		RETURNING id
	`, username).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func newAttendanceTestService() attendance.AttendanceService {
	repo := postgresql.NewAttendanceRepository(testAttendanceSetup.DB)
	return NewAttendanceService(repo, 8.0)
}

func TestAttendanceService_CheckIn_FirstWriteWins(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t, ctx)

	userID := createAttendanceTestUser(t, ctx)
	svc := newAttendanceTestService()

	day := time.Now().UTC().Truncate(24 * time.Hour)
	first := day.Add(9 * time.Hour)
	second := day.Add(10 * time.Hour)

	resp, err := svc.CheckIn(ctx, userID, day, first)
	require.NoError(t, err)
	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, "09:00:00", *resp.CheckIn)

	// A repeated check-in is a no-op; the first time stands.
	resp, err = svc.CheckIn(ctx, userID, day, second)
	require.NoError(t, err)
	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, "09:00:00", *resp.CheckIn)
}

func TestAttendanceService_CheckOut_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t, ctx)

	userID := createAttendanceTestUser(t, ctx)
	svc := newAttendanceTestService()

	day := time.Now().UTC().Truncate(24 * time.Hour)
	_, err := svc.CheckIn(ctx, userID, day, day.Add(9*time.Hour))
	require.NoError(t, err)

	resp, err := svc.CheckOut(ctx, userID, day, day.Add(17*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, resp.CheckOut)
	assert.Equal(t, "17:00:00", *resp.CheckOut)

	// Checking out again overwrites the previous value.
	resp, err = svc.CheckOut(ctx, userID, day, day.Add(18*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, resp.CheckOut)
	assert.Equal(t, "18:00:00", *resp.CheckOut)
}

func TestAttendanceService_CheckOut_WithoutCheckIn(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t, ctx)

	userID := createAttendanceTestUser(t, ctx)
	svc := newAttendanceTestService()

	day := time.Now().UTC().Truncate(24 * time.Hour)
	resp, err := svc.CheckOut(ctx, userID, day, day.Add(17*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, resp.CheckIn)
	require.NotNil(t, resp.CheckOut)
	assert.Equal(t, *resp.CheckIn, *resp.CheckOut)
}

func TestAttendanceService_RecommendedLeave(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t, ctx)

	userID := createAttendanceTestUser(t, ctx)
	svc := newAttendanceTestService()

	day := time.Now().UTC().Truncate(24 * time.Hour)
	resp, err := svc.CheckIn(ctx, userID, day, day.Add(9*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, resp.RecommendedLeave)
	assert.Equal(t, "17:00:00", *resp.RecommendedLeave)
}

func TestAttendanceService_GetForDay_Absent(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t, ctx)

	userID := createAttendanceTestUser(t, ctx)
	svc := newAttendanceTestService()

	resp, err := svc.GetForDay(ctx, userID, time.Now().UTC().Truncate(24*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, resp)
}
