package service

import (
	"context"

	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
	"github.com/CSAbhinav3/IWP-CIA3/internal/repository"
	apperrors "github.com/CSAbhinav3/IWP-CIA3/pkg/util"
)

// CompanyService covers company profiles and placement-cell moderation
// of company accounts.
type CompanyService struct {
	companies repository.CompanyRepository
}

// NewCompanyService builds the service.
func NewCompanyService(companies repository.CompanyRepository) *CompanyService {
	return &CompanyService{companies: companies}
}

// Profile returns the caller's company record.
func (s *CompanyService) Profile(ctx context.Context, companyID int64) (*domain.Company, error) {
	return s.companies.GetByID(ctx, companyID)
}

// UpdateProfile replaces the caller's profile fields.
func (s *CompanyService) UpdateProfile(ctx context.Context, companyID int64, profile domain.CompanyProfile) error {
	if profile.CompanyName == "" || profile.ContactPerson == "" {
		return apperrors.NewValidationError("Company name and contact person are required")
	}
	return s.companies.UpdateProfile(ctx, companyID, profile)
}

// ListByStatus returns company accounts in the given state for review.
func (s *CompanyService) ListByStatus(ctx context.Context, status domain.CompanyStatus) ([]domain.Company, error) {
	return s.companies.ListByStatus(ctx, status)
}

// Approve activates a pending company account.
func (s *CompanyService) Approve(ctx context.Context, companyID int64) error {
	return s.companies.UpdateStatus(ctx, companyID, domain.CompanyStatusApproved)
}

// Reject declines a company account.
func (s *CompanyService) Reject(ctx context.Context, companyID int64) error {
	return s.companies.UpdateStatus(ctx, companyID, domain.CompanyStatusRejected)
}
