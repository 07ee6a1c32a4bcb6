package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CSAbhinav3/IWP-CIA3/internal/api/dto"
	"github.com/CSAbhinav3/IWP-CIA3/internal/service"
)

// StudentsHandler exposes student listing for the placement cell.
type StudentsHandler struct {
	students *service.StudentService
}

// NewStudentsHandler constructs handler.
func NewStudentsHandler(students *service.StudentService) *StudentsHandler {
	return &StudentsHandler{students: students}
}

// List handles GET /api/students?year=2024&branch=CSE.
func (h *StudentsHandler) List(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	branch := c.Query("branch")

	students, err := h.students.ListByYearBranch(c.UserContext(), year, branch)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStudentViews(students))
}
