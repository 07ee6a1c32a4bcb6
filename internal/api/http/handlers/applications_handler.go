package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/CSAbhinav3/IWP-CIA3/internal/api/dto"
	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
	"github.com/CSAbhinav3/IWP-CIA3/internal/service"
)

// ApplicationsHandler exposes application creation and review.
type ApplicationsHandler struct {
	applications *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applications *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{applications: applications}
}

// Create handles POST /api/applications. The student id comes from the
// caller's identity.
func (h *ApplicationsHandler) Create(c *fiber.Ctx) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.JobID == 0 {
		return fiber.NewError(http.StatusBadRequest, "jobId is required")
	}

	app, err := h.applications.Apply(c.UserContext(), identity.ID, req.JobID)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":     "Application created successfully",
		"application": dto.NewApplicationViews([]domain.Application{*app})[0],
	})
}

// ListByJob handles GET /api/applications/:jobId.
func (h *ApplicationsHandler) ListByJob(c *fiber.Ctx) error {
	jobID, err := c.ParamsInt("jobId")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid job id")
	}

	apps, err := h.applications.ListByJob(c.UserContext(), int64(jobID))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewApplicationViews(apps))
}

// UpdateStatus handles POST /api/applications/:id/update. Ownership is
// enforced against the caller's identity.
func (h *ApplicationsHandler) UpdateStatus(c *fiber.Ctx) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}
	applicationID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid application id")
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Status == "" {
		return fiber.NewError(http.StatusBadRequest, "status is required")
	}

	if err := h.applications.UpdateStatus(c.UserContext(), identity.ID, int64(applicationID), domain.ApplicationStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Application status updated successfully"})
}
