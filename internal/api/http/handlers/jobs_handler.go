package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/CSAbhinav3/IWP-CIA3/internal/api/dto"
	"github.com/CSAbhinav3/IWP-CIA3/internal/events"
	"github.com/CSAbhinav3/IWP-CIA3/internal/service"
)

// JobsHandler exposes placement-cell job moderation.
type JobsHandler struct {
	jobs *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobs *service.JobService) *JobsHandler {
	return &JobsHandler{jobs: jobs}
}

// List handles GET /api/jobs.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	jobs, err := h.jobs.ListJobs(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewJobViews(jobs))
}

// Approve handles POST /api/jobs/:id/approve.
func (h *JobsHandler) Approve(c *fiber.Ctx) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}
	jobID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid job id")
	}

	actor := events.Actor{Type: identity.Type, ID: identity.ID}
	if err := h.jobs.Approve(c.UserContext(), actor, int64(jobID)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Job approved successfully"})
}

// Reject handles POST /api/jobs/:id/reject.
func (h *JobsHandler) Reject(c *fiber.Ctx) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}
	jobID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid job id")
	}

	actor := events.Actor{Type: identity.Type, ID: identity.ID}
	if err := h.jobs.Reject(c.UserContext(), actor, int64(jobID)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Job rejected successfully"})
}
