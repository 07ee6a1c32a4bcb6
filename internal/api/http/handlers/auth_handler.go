package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/CSAbhinav3/IWP-CIA3/internal/api/dto"
	"github.com/CSAbhinav3/IWP-CIA3/internal/auth"
	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
	"github.com/CSAbhinav3/IWP-CIA3/internal/service"
)

// AuthHandler exposes registration, login, and token verification.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// RegisterCompany handles POST /api/auth/company/register.
func (h *AuthHandler) RegisterCompany(c *fiber.Ctx) error {
	var req dto.CompanyRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" || req.CompanyName == "" || req.ContactPerson == "" {
		return fiber.NewError(http.StatusBadRequest, "All fields are required")
	}

	company, token, exp, err := h.auth.RegisterCompany(c.UserContext(), req.Email, req.Password, req.CompanyName, req.ContactPerson)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Company registered successfully",
		"token":   token,
		"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		"user": fiber.Map{
			"id":            company.ID,
			"email":         company.Email,
			"companyName":   company.CompanyName,
			"contactPerson": company.ContactPerson,
			"type":          domain.RoleCompany,
		},
	})
}

// LoginCompany handles POST /api/auth/company/login.
func (h *AuthHandler) LoginCompany(c *fiber.Ctx) error {
	req, err := parseLogin(c)
	if err != nil {
		return err
	}

	company, token, exp, err := h.auth.LoginCompany(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		"user": fiber.Map{
			"id":            company.ID,
			"email":         company.Email,
			"companyName":   company.CompanyName,
			"contactPerson": company.ContactPerson,
			"type":          domain.RoleCompany,
		},
	})
}

// LoginStudent handles POST /api/auth/student/login.
func (h *AuthHandler) LoginStudent(c *fiber.Ctx) error {
	req, err := parseLogin(c)
	if err != nil {
		return err
	}

	student, token, exp, err := h.auth.LoginStudent(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		"user": fiber.Map{
			"id":        student.ID,
			"email":     student.Email,
			"firstName": student.FirstName,
			"lastName":  student.LastName,
			"type":      domain.RoleStudent,
		},
	})
}

// LoginFaculty handles POST /api/auth/faculty/login.
func (h *AuthHandler) LoginFaculty(c *fiber.Ctx) error {
	req, err := parseLogin(c)
	if err != nil {
		return err
	}

	member, token, exp, err := h.auth.LoginFaculty(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		"user": fiber.Map{
			"id":        member.ID,
			"email":     member.Email,
			"firstName": member.FirstName,
			"lastName":  member.LastName,
			"type":      domain.RoleFaculty,
		},
	})
}

// Verify handles GET /api/auth/verify. The request gate runs first, so
// reaching here means the token maps to a live account.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "Invalid token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    IdentityView(identity),
	})
}

// IdentityView renders a resolved identity in its role-specific shape.
func IdentityView(identity *auth.Identity) fiber.Map {
	view := fiber.Map{
		"id":    identity.ID,
		"email": identity.Email,
		"type":  identity.Type,
	}
	switch identity.Type {
	case domain.RoleCompany:
		view["companyName"] = identity.CompanyName
		view["status"] = identity.Status
	default:
		view["firstName"] = identity.FirstName
		view["lastName"] = identity.LastName
	}
	return view
}

func parseLogin(c *fiber.Ctx) (*dto.LoginRequest, error) {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return nil, fiber.NewError(http.StatusBadRequest, "Email and password are required")
	}
	return &req, nil
}
