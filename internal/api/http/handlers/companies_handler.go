package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/CSAbhinav3/IWP-CIA3/internal/api/dto"
	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
	"github.com/CSAbhinav3/IWP-CIA3/internal/service"
)

// CompaniesHandler exposes placement-cell moderation of company
// accounts.
type CompaniesHandler struct {
	companies *service.CompanyService
}

// NewCompaniesHandler constructs handler.
func NewCompaniesHandler(companies *service.CompanyService) *CompaniesHandler {
	return &CompaniesHandler{companies: companies}
}

// List handles GET /api/companies?status=pending.
func (h *CompaniesHandler) List(c *fiber.Ctx) error {
	status := domain.CompanyStatus(c.Query("status", string(domain.CompanyStatusPending)))

	companies, err := h.companies.ListByStatus(c.UserContext(), status)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCompanyViews(companies))
}

// Approve handles POST /api/companies/:id/approve.
func (h *CompaniesHandler) Approve(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid company id")
	}

	if err := h.companies.Approve(c.UserContext(), int64(companyID)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Company approved successfully"})
}

// Reject handles POST /api/companies/:id/reject.
func (h *CompaniesHandler) Reject(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid company id")
	}

	if err := h.companies.Reject(c.UserContext(), int64(companyID)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Company rejected successfully"})
}
