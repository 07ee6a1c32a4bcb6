package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/CSAbhinav3/IWP-CIA3/internal/auth"
	"github.com/CSAbhinav3/IWP-CIA3/internal/config"
	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
	"github.com/CSAbhinav3/IWP-CIA3/internal/repository"
	apperrors "github.com/CSAbhinav3/IWP-CIA3/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	companies  repository.CompanyRepository
	students   repository.StudentRepository
	faculty    repository.FacultyRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	CompanyRepo repository.CompanyRepository
	StudentRepo repository.StudentRepository
	FacultyRepo repository.FacultyRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		companies:  deps.CompanyRepo,
		students:   deps.StudentRepo,
		faculty:    deps.FacultyRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// RegisterCompany creates a pending company account and issues a token
// immediately so the company can complete its profile while awaiting
// approval.
func (s *AuthService) RegisterCompany(ctx context.Context, email, password, companyName, contactPerson string) (*domain.Company, string, time.Time, error) {
	if _, err := s.companies.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("Company already registered with this email")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	company := &domain.Company{
		Email:         email,
		PasswordHash:  hash,
		CompanyName:   companyName,
		ContactPerson: contactPerson,
		Status:        domain.CompanyStatusPending,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Issue(company.ID, domain.RoleCompany, auth.ExtraClaims{
		Email:       company.Email,
		CompanyName: company.CompanyName,
	})
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return company, token, exp, nil
}

// LoginCompany authenticates a company account. Unapproved companies are
// rejected before a token is issued.
func (s *AuthService) LoginCompany(ctx context.Context, email, password string) (*domain.Company, string, time.Time, error) {
	company, err := s.companies.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(company.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid credentials")
	}
	if company.Status != domain.CompanyStatusApproved {
		return nil, "", time.Time{}, apperrors.NewForbidden("Account pending approval")
	}

	token, exp, err := s.tokenMgr.Issue(company.ID, domain.RoleCompany, auth.ExtraClaims{
		Email:       company.Email,
		CompanyName: company.CompanyName,
	})
	if err != nil {
		return nil, "", time.Time{}, err
	}

	if err := s.companies.TouchLastLogin(ctx, company.ID); err != nil {
		return nil, "", time.Time{}, err
	}
	return company, token, exp, nil
}

// LoginStudent authenticates a student account.
func (s *AuthService) LoginStudent(ctx context.Context, email, password string) (*domain.Student, string, time.Time, error) {
	student, err := s.students.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(student.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid credentials")
	}

	token, exp, err := s.tokenMgr.Issue(student.ID, domain.RoleStudent, auth.ExtraClaims{Email: student.Email})
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return student, token, exp, nil
}

// LoginFaculty authenticates a placement-cell administrator.
func (s *AuthService) LoginFaculty(ctx context.Context, email, password string) (*domain.Faculty, string, time.Time, error) {
	member, err := s.faculty.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(member.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid credentials")
	}

	token, exp, err := s.tokenMgr.Issue(member.ID, domain.RoleFaculty, auth.ExtraClaims{Email: member.Email})
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return member, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
