package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/timeflow-hq/timeflow-backend-go/internal/handler/http/middleware"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Timesheet  TimesheetHandler
	Task       TaskHandler
	Leave      LeaveHandler
	Project    ProjectHandler
	User       UserHandler
	Report     ReportHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeflow-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/me", h.User.Me)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/my", h.Attendance.GetMy)
			})

			r.Route("/entries", func(r chi.Router) {
				r.Post("/", h.Timesheet.AddEntry)
				r.Get("/my", h.Timesheet.ListMine)
				r.Delete("/{entryID}", h.Timesheet.DeleteEntry)
				r.Get("/allowed-projects", h.Timesheet.ListAllowedProjects)

				// Manager/admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/pending", h.Timesheet.ListPendingApproval)
					r.Post("/{entryID}/approve", h.Timesheet.ApproveEntry)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Post("/", h.Task.Create)
				r.Get("/my", h.Task.ListMine)
				r.Post("/{taskID}/status", h.Task.UpdateStatus)

				// Manager/admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", h.Task.List)
					r.Get("/pending", h.Task.ListPendingApproval)
					r.Post("/{taskID}/approve", h.Task.Approve)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Request)
				r.Post("/quick", h.Leave.QuickRequest)
				r.Get("/my", h.Leave.ListMine)

				// Manager/admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/pending", h.Leave.ListPending)
					r.Post("/{leaveID}/decide", h.Leave.Decide)
				})
			})

			// Manager/admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)

				r.Route("/projects", func(r chi.Router) {
					r.Get("/", h.Project.List)
					r.Post("/", h.Project.Create)
					r.Post("/{projectID}/close", h.Project.Close)
					r.Get("/{projectID}/members", h.Project.ListMembers)
					r.Post("/{projectID}/members", h.Project.AddMember)
					r.Delete("/members/{memberID}", h.Project.RemoveMember)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/utilization", h.Report.Utilization)
					r.Get("/project-load", h.Report.ProjectLoad)
					r.Get("/department-workload", h.Report.DepartmentWorkload)
					r.Get("/team-calendar", h.Report.TeamCalendar)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.User.List)
					r.Post("/", h.User.Create)
					r.Post("/reset-password", h.User.ResetPassword)
				})
			})
		})
	})
	return r
}
