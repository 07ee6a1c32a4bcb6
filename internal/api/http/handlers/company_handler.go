package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/CSAbhinav3/IWP-CIA3/internal/api/dto"
	"github.com/CSAbhinav3/IWP-CIA3/internal/auth"
	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
	"github.com/CSAbhinav3/IWP-CIA3/internal/repository"
	"github.com/CSAbhinav3/IWP-CIA3/internal/service"
	apperrors "github.com/CSAbhinav3/IWP-CIA3/pkg/util"
)

// CompanyHandler exposes the company self-service surface. Every query
// is scoped by the resolved identity's id.
type CompanyHandler struct {
	companies    *service.CompanyService
	jobs         *service.JobService
	applications *service.ApplicationService
	stats        *service.StatsService
}

// NewCompanyHandler constructs handler.
func NewCompanyHandler(companies *service.CompanyService, jobs *service.JobService, applications *service.ApplicationService, stats *service.StatsService) *CompanyHandler {
	return &CompanyHandler{companies: companies, jobs: jobs, applications: applications, stats: stats}
}

// Profile handles GET /api/company/profile.
func (h *CompanyHandler) Profile(c *fiber.Ctx) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	company, err := h.companies.Profile(c.UserContext(), identity.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"company": dto.NewCompanyView(*company),
	})
}

// UpdateProfile handles PUT /api/company/profile.
func (h *CompanyHandler) UpdateProfile(c *fiber.Ctx) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req dto.CompanyProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	profile := domain.CompanyProfile{
		CompanyName:   req.CompanyName,
		Industry:      req.Industry,
		Website:       req.Website,
		Location:      req.Location,
		CompanySize:   req.CompanySize,
		Description:   req.Description,
		ContactPerson: req.ContactPerson,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
	}
	if err := h.companies.UpdateProfile(c.UserContext(), identity.ID, profile); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile updated successfully",
	})
}

// DashboardStats handles GET /api/company/dashboard-stats.
func (h *CompanyHandler) DashboardStats(c *fiber.Ctx) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	dashboard, err := h.stats.CompanyOverview(c.UserContext(), identity.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"totalJobs":         dashboard.TotalJobs,
		"totalApplications": dashboard.TotalApplications,
		"totalHired":        dashboard.TotalHired,
	})
}

// Jobs handles GET /api/company/jobs.
func (h *CompanyHandler) Jobs(c *fiber.Ctx) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}
	limit := c.QueryInt("limit", 0)

	jobs, err := h.jobs.CompanyJobs(c.UserContext(), identity.ID, limit)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCompanyJobViews(jobs))
}

// PostJob handles POST /api/company/jobs.
func (h *CompanyHandler) PostJob(c *fiber.Ctx) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req dto.PostJobRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.JobTitle == "" || req.Department == "" || req.Description == "" {
		return fiber.NewError(http.StatusBadRequest, "Job title, department and description are required")
	}

	job, err := h.jobs.PostJob(c.UserContext(), identity.ID, service.PostJobInput{
		JobTitle:    req.JobTitle,
		Department:  req.Department,
		Description: req.Description,
		Location:    req.Location,
		JobType:     req.JobType,
		SalaryRange: req.SalaryRange,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Job posted successfully",
		"job":     dto.NewJobView(*job),
	})
}

// Applications handles GET /api/company/applications.
func (h *CompanyHandler) Applications(c *fiber.Ctx) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	filter := repository.ApplicationFilter{Limit: c.QueryInt("limit", 0)}
	if jobID := int64(c.QueryInt("jobId", 0)); jobID > 0 {
		filter.JobID = &jobID
	}

	details, err := h.applications.CompanyApplications(c.UserContext(), identity.ID, filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewApplicationDetailViews(details))
}

// callerIdentity returns the resolved identity; the request gate runs
// before every handler that calls this, so a miss means a wiring bug.
func callerIdentity(c *fiber.Ctx) (*auth.Identity, error) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("Authentication token required")
	}
	return identity, nil
}
