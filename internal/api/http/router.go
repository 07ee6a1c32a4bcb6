package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CSAbhinav3/IWP-CIA3/internal/api/http/handlers"
	"github.com/CSAbhinav3/IWP-CIA3/internal/auth"
	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Company       *handlers.CompanyHandler
	Companies     *handlers.CompaniesHandler
	Jobs          *handlers.JobsHandler
	Students      *handlers.StudentsHandler
	Applications  *handlers.ApplicationsHandler
	Notifications *handlers.NotificationsHandler
	Stats         *handlers.StatsHandler
	Gate          *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Mutating endpoints all sit behind
// the request gate with a role guard.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/company/register", cfg.Auth.RegisterCompany)
	authGroup.Post("/company/login", cfg.Auth.LoginCompany)
	authGroup.Post("/student/login", cfg.Auth.LoginStudent)
	authGroup.Post("/faculty/login", cfg.Auth.LoginFaculty)
	authGroup.Get("/verify", cfg.Gate.Handle, cfg.Auth.Verify)

	company := api.Group("/company", cfg.Gate.Handle, auth.RequireRole(domain.RoleCompany))
	company.Get("/profile", cfg.Company.Profile)
	company.Put("/profile", cfg.Company.UpdateProfile)
	company.Get("/dashboard-stats", cfg.Company.DashboardStats)
	company.Get("/jobs", cfg.Company.Jobs)
	company.Post("/jobs", cfg.Company.PostJob)
	company.Get("/applications", cfg.Company.Applications)

	faculty := auth.RequireRole(domain.RoleFaculty)

	jobs := api.Group("/jobs", cfg.Gate.Handle, faculty)
	jobs.Get("/", cfg.Jobs.List)
	jobs.Post("/:id/approve", cfg.Jobs.Approve)
	jobs.Post("/:id/reject", cfg.Jobs.Reject)

	companies := api.Group("/companies", cfg.Gate.Handle, faculty)
	companies.Get("/", cfg.Companies.List)
	companies.Post("/:id/approve", cfg.Companies.Approve)
	companies.Post("/:id/reject", cfg.Companies.Reject)

	api.Get("/students", cfg.Gate.Handle, faculty, cfg.Students.List)
	api.Post("/notify-students", cfg.Gate.Handle, faculty, cfg.Notifications.NotifyStudents)
	api.Get("/stats", cfg.Gate.Handle, faculty, cfg.Stats.Overview)

	applications := api.Group("/applications", cfg.Gate.Handle)
	applications.Post("/", auth.RequireRole(domain.RoleStudent), cfg.Applications.Create)
	applications.Get("/:jobId", faculty, cfg.Applications.ListByJob)
	applications.Post("/:id/update", auth.RequireRole(domain.RoleCompany), cfg.Applications.UpdateStatus)

	api.Get("/notifications", cfg.Gate.Handle, auth.RequireRole(domain.RoleStudent), cfg.Notifications.MyNotifications)
}
