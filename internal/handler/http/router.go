package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/worklens/workforce-backend-go/internal/handler/http/middleware"
	"github.com/worklens/workforce-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Company    CompanyHandler
	Employee   EmployeeHandler
	Face       FaceHandler
	Location   LocationHandler
	Shift      ShiftHandler
	Attendance AttendanceHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
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
			r.Post("/register", h.Auth.Register)
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
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/companies/my", func(r chi.Router) {
				r.Get("/", h.Company.GetMyCompany)
				r.With(middleware.AdminOnly).Put("/", h.Company.UpdateMyCompany)
			})

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", h.Company.ListTeams)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Company.CreateTeam)
					r.Put("/{teamID}", h.Company.UpdateTeam)
					r.Delete("/{teamID}", h.Company.DeleteTeam)
					r.Post("/{teamID}/members", h.Company.AddTeamMember)
					r.Delete("/{teamID}/members/{employeeID}", h.Company.RemoveTeamMember)
				})

				r.Get("/{teamID}", h.Company.GetTeam)
				r.Get("/{teamID}/members", h.Company.ListTeamMembers)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Company.ListDepartments)
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Company.CreateDepartment)
					r.Put("/{departmentID}", h.Company.UpdateDepartment)
					r.Delete("/{departmentID}", h.Company.DeleteDepartment)
				})
			})

			r.Route("/positions", func(r chi.Router) {
				r.Get("/", h.Company.ListPositions)
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Company.CreatePosition)
					r.Put("/{positionID}", h.Company.UpdatePosition)
					r.Delete("/{positionID}", h.Company.DeletePosition)
				})
			})

			r.Route("/position-levels", func(r chi.Router) {
				r.Get("/", h.Company.ListPositionLevels)
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Company.CreatePositionLevel)
					r.Put("/{levelID}", h.Company.UpdatePositionLevel)
					r.Delete("/{levelID}", h.Company.DeletePositionLevel)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/my", h.Employee.GetMyProfile)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/", h.Employee.List)
					r.Get("/{employeeID}", h.Employee.Get)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{employeeID}", h.Employee.Update)
					r.Delete("/{employeeID}", h.Employee.Deactivate)

					r.Post("/{employeeID}/locations", h.Location.Create)
					r.Get("/{employeeID}/locations", h.Location.ListForEmployee)
				})
			})

			r.Route("/locations", func(r chi.Router) {
				r.Get("/my", h.Location.ListMine)
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{locationID}", h.Location.Update)
					r.Delete("/{locationID}", h.Location.Delete)
				})
			})

			r.Route("/face", func(r chi.Router) {
				r.Post("/register", h.Face.Register)
				r.Post("/compare", h.Face.Compare)
				r.Get("/status", h.Face.Status)
				r.Get("/image", h.Face.GetImage)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/my", h.Shift.ListMyShifts)
				r.Get("/current", h.Shift.GetCurrentShift)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/", h.Shift.ListShifts)
					r.Get("/{shiftID}", h.Shift.GetShift)
					r.Get("/{shiftID}/users", h.Shift.ListShiftUsers)
					r.Post("/", h.Shift.CreateShift)
					r.Put("/{shiftID}", h.Shift.UpdateShift)
					r.Delete("/{shiftID}", h.Shift.DeleteShift)
				})
			})

			r.Route("/shift-assignments", func(r chi.Router) {
				r.Use(middleware.ManagerOnly)
				r.Post("/", h.Shift.CreateAssignment)
				r.Get("/", h.Shift.ListAssignments)
				r.Get("/{assignmentID}", h.Shift.GetAssignment)
				r.Put("/{assignmentID}", h.Shift.UpdateAssignment)
				r.Delete("/{assignmentID}", h.Shift.DeleteAssignment)
			})

			r.With(middleware.AdminOnly).Post("/shift-rotations/run", h.Shift.RunRotations)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/mark", h.Attendance.Mark)
				r.Get("/last", h.Attendance.GetLast)
				r.Get("/history", h.Attendance.GetMyHistory)
				r.Get("/logs", h.Attendance.GetMyLogs)
				r.With(middleware.ManagerOnly).Get("/", h.Attendance.List)
			})
		})
	})

	return r
}
