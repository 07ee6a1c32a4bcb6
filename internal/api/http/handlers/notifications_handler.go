package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/CSAbhinav3/IWP-CIA3/internal/api/dto"
	"github.com/CSAbhinav3/IWP-CIA3/internal/events"
	"github.com/CSAbhinav3/IWP-CIA3/internal/service"
)

// NotificationsHandler exposes job announcements and the student inbox.
type NotificationsHandler struct {
	notifications *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notifications *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{notifications: notifications}
}

// NotifyStudents handles POST /api/notify-students.
func (h *NotificationsHandler) NotifyStudents(c *fiber.Ctx) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req dto.NotifyStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.JobID == 0 || req.Year == 0 || len(req.Branches) == 0 {
		return fiber.NewError(http.StatusBadRequest, "Job, year, and branches are required")
	}

	actor := events.Actor{Type: identity.Type, ID: identity.ID}
	count, err := h.notifications.NotifyStudents(c.UserContext(), actor, service.NotifyStudentsInput{
		JobID:    req.JobID,
		Year:     req.Year,
		Branches: req.Branches,
		Message:  req.Message,
	})
	if err != nil {
		return err
	}

	if count == 0 {
		return c.JSON(fiber.Map{"message": "No students found for selected criteria."})
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("%d students notified successfully.", count)})
}

// MyNotifications handles GET /api/notifications for students.
func (h *NotificationsHandler) MyNotifications(c *fiber.Ctx) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	notifications, err := h.notifications.StudentNotifications(c.UserContext(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewNotificationViews(notifications))
}
