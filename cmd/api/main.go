package main

import (
	"fmt"
	"net/http"

	"github.com/timeflow-hq/timeflow-backend-go/internal/config"
	appHTTP "github.com/timeflow-hq/timeflow-backend-go/internal/handler/http"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/cron"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/database"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/jwt"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/oauth"
	"github.com/timeflow-hq/timeflow-backend-go/internal/repository/postgresql"
	attendanceService "github.com/timeflow-hq/timeflow-backend-go/internal/service/attendance"
	authService "github.com/timeflow-hq/timeflow-backend-go/internal/service/auth"
	leaveService "github.com/timeflow-hq/timeflow-backend-go/internal/service/leave"
	projectService "github.com/timeflow-hq/timeflow-backend-go/internal/service/project"
	reportService "github.com/timeflow-hq/timeflow-backend-go/internal/service/report"
	taskService "github.com/timeflow-hq/timeflow-backend-go/internal/service/task"
	timesheetService "github.com/timeflow-hq/timeflow-backend-go/internal/service/timesheet"
	userService "github.com/timeflow-hq/timeflow-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(db, userRepo, jwtService, jwtRepo, googleService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, cfg.Tracking.ShiftHours)
	timesheetSvc := timesheetService.NewTimesheetService(timeEntryRepo, taskRepo, projectRepo, userRepo, cfg.Tracking.AllowBackfillDays)
	taskSvc := taskService.NewTaskService(taskRepo, userRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, timeEntryRepo, cfg.Tracking.ShiftHours)
	projectSvc := projectService.NewProjectService(projectRepo)
	userSvc := userService.NewUserService(userRepo)
	reportSvc := reportService.NewReportService(reportRepo, userRepo, leaveRequestRepo)

	scheduler := cron.NewScheduler()
	cron.RegisterPeriodCloseJob(scheduler, timeEntryRepo, cfg.Tracking.PeriodLockDays)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Timesheet:  appHTTP.NewTimesheetHandler(timesheetSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Project:    appHTTP.NewProjectHandler(projectSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
