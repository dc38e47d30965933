package task

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/task"
	"github.com/timeflow-hq/timeflow-backend-go/internal/repository/postgresql"
	"github.com/timeflow-hq/timeflow-backend-go/internal/repository/postgresql/postgresql_test"
)

var testTaskSetup *postgresql_test.TestDatabaseSetup

func taskTestInit(t *testing.T, ctx context.Context) {
	if testTaskSetup == nil {
		var err error
		testTaskSetup, err = postgresql_test.NewTestDatabase()
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
	}
	require.NoError(t, testTaskSetup.TruncateAllTables(ctx))
}

func createTaskTestUser(t *testing.T, ctx context.Context, role string) string {
	var userID string
	username := fmt.Sprintf("user-%d", time.Now().UnixNano())
	err := testTaskSetup.DB.Pool.QueryRow(ctx, `
		INSERT INTO users (id, username, full_name, role)
		VALUES (gen_random_uuid(), $1, 'Test User', $2)
		RETURNING id
	`, username, role).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func newTaskTestService() (task.TaskService, task.TaskRepository) {
	taskRepo := postgresql.NewTaskRepository(testTaskSetup.DB)
	userRepo := postgresql.NewUserRepository(testTaskSetup.DB)
	return NewTaskService(taskRepo, userRepo), taskRepo
}

func TestTaskService_Create_EmployeeWaitsForApproval(t *testing.T) {
	ctx := context.Background()
	taskTestInit(t, ctx)

	employeeID := createTaskTestUser(t, ctx, "employee")
	svc, _ := newTaskTestService()

	created, err := svc.Create(ctx, task.CreateTaskRequest{
		CreatorID:  employeeID,
		Title:      "Write onboarding doc",
		AssigneeID: employeeID,
	})
	require.NoError(t, err)
	assert.False(t, created.Approved)
	assert.Equal(t, string(task.StatusWaiting), created.Status)
	assert.Equal(t, string(task.PriorityMedium), created.Priority)
}

func TestTaskService_Create_ManagerStartsApproved(t *testing.T) {
	ctx := context.Background()
	taskTestInit(t, ctx)

	managerID := createTaskTestUser(t, ctx, "manager")
	employeeID := createTaskTestUser(t, ctx, "employee")
	svc, _ := newTaskTestService()

	created, err := svc.Create(ctx, task.CreateTaskRequest{
		CreatorID:  managerID,
		Title:      "Quarterly report",
		AssigneeID: employeeID,
		Priority:   "high",
	})
	require.NoError(t, err)
	assert.True(t, created.Approved)
	assert.Equal(t, string(task.StatusInProgress), created.Status)
	assert.Equal(t, string(task.PriorityHigh), created.Priority)
}

func TestTaskService_Create_InvalidDueDate(t *testing.T) {
	ctx := context.Background()
	taskTestInit(t, ctx)

	managerID := createTaskTestUser(t, ctx, "manager")
	svc, _ := newTaskTestService()

	badDate := "2026-13-40"
	_, err := svc.Create(ctx, task.CreateTaskRequest{
		CreatorID:  managerID,
		Title:      "Plan offsite",
		AssigneeID: managerID,
		DueDate:    &badDate,
	})
	assert.Error(t, err)
}

func TestTaskService_List_ReturnsAllTasks(t *testing.T) {
	ctx := context.Background()
	taskTestInit(t, ctx)

	managerID := createTaskTestUser(t, ctx, "manager")
	employeeID := createTaskTestUser(t, ctx, "employee")
	svc, _ := newTaskTestService()

	for _, req := range []task.CreateTaskRequest{
		{CreatorID: managerID, Title: "Audit access", AssigneeID: employeeID},
		{CreatorID: employeeID, Title: "Draft postmortem", AssigneeID: employeeID},
	} {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestTaskService_Approve_AdvancesWaitingTask(t *testing.T) {
	ctx := context.Background()
	taskTestInit(t, ctx)

	employeeID := createTaskTestUser(t, ctx, "employee")
	managerID := createTaskTestUser(t, ctx, "manager")
	svc, taskRepo := newTaskTestService()

	created, err := svc.Create(ctx, task.CreateTaskRequest{
		CreatorID:  employeeID,
		Title:      "Refine backlog",
		AssigneeID: employeeID,
	})
	require.NoError(t, err)

	err = svc.Approve(ctx, task.ApproveTaskRequest{
		ApproverID: managerID,
		TaskID:     created.ID,
		Approve:    true,
	})
	require.NoError(t, err)

	stored, err := taskRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Approved)
	assert.Equal(t, task.StatusInProgress, stored.Status)
}

func TestTaskService_UpdateStatus_ClampsPercentAndComments(t *testing.T) {
	ctx := context.Background()
	taskTestInit(t, ctx)

	managerID := createTaskTestUser(t, ctx, "manager")
	employeeID := createTaskTestUser(t, ctx, "employee")
	svc, taskRepo := newTaskTestService()

	created, err := svc.Create(ctx, task.CreateTaskRequest{
		CreatorID:  managerID,
		Title:      "Migrate reports",
		AssigneeID: employeeID,
	})
	require.NoError(t, err)

	err = svc.UpdateStatus(ctx, task.UpdateStatusRequest{
		CallerID: employeeID,
		TaskID:   created.ID,
		Status:   string(task.StatusOnPause),
		Percent:  150,
		Comment:  "blocked on data export",
	})
	require.NoError(t, err)

	stored, err := taskRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusOnPause, stored.Status)
	assert.Equal(t, 100, stored.PercentComplete)

	// Negative percent clamps to zero.
	err = svc.UpdateStatus(ctx, task.UpdateStatusRequest{
		CallerID: employeeID,
		TaskID:   created.ID,
		Status:   string(task.StatusOnPause),
		Percent:  -5,
	})
	require.NoError(t, err)

	stored, err = taskRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.PercentComplete)

	comments, err := taskRepo.ListComments(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "blocked on data export", comments[0].Content)
	assert.Equal(t, employeeID, comments[0].AuthorID)
}

func TestTaskService_UpdateStatus_ReopenAllowed(t *testing.T) {
	ctx := context.Background()
	taskTestInit(t, ctx)

	managerID := createTaskTestUser(t, ctx, "manager")
	employeeID := createTaskTestUser(t, ctx, "employee")
	svc, taskRepo := newTaskTestService()

	created, err := svc.Create(ctx, task.CreateTaskRequest{
		CreatorID:  managerID,
		Title:      "Close out sprint",
		AssigneeID: employeeID,
	})
	require.NoError(t, err)

	for _, status := range []task.Status{task.StatusDone, task.StatusInProgress} {
		err = svc.UpdateStatus(ctx, task.UpdateStatusRequest{
			CallerID: employeeID,
			TaskID:   created.ID,
			Status:   string(status),
		})
		require.NoError(t, err)
	}

	stored, err := taskRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, stored.Status)
}

func TestTaskService_UpdateStatus_NotAssignee(t *testing.T) {
	ctx := context.Background()
	taskTestInit(t, ctx)

	managerID := createTaskTestUser(t, ctx, "manager")
	employeeID := createTaskTestUser(t, ctx, "employee")
	otherID := createTaskTestUser(t, ctx, "employee")
	svc, _ := newTaskTestService()

	created, err := svc.Create(ctx, task.CreateTaskRequest{
		CreatorID:  managerID,
		Title:      "Review designs",
		AssigneeID: employeeID,
	})
	require.NoError(t, err)

	err = svc.UpdateStatus(ctx, task.UpdateStatusRequest{
		CallerID: otherID,
		TaskID:   created.ID,
		Status:   string(task.StatusDone),
	})
	assert.ErrorIs(t, err, task.ErrForbidden)
}
