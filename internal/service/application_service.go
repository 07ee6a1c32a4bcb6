package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
	"github.com/CSAbhinav3/IWP-CIA3/internal/events"
	"github.com/CSAbhinav3/IWP-CIA3/internal/repository"
	apperrors "github.com/CSAbhinav3/IWP-CIA3/pkg/util"
)

// ApplicationService covers student applications and company review.
type ApplicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	dispatcher   events.Dispatcher
}

// NewApplicationService builds the service.
func NewApplicationService(applications repository.ApplicationRepository, jobs repository.JobRepository, dispatcher events.Dispatcher) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs, dispatcher: dispatcher}
}

// Apply records a student's application to an approved posting. The
// student id comes from the resolved identity.
func (s *ApplicationService) Apply(ctx context.Context, studentID, jobID int64) (*domain.Application, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobStatusApproved {
		return nil, apperrors.NewValidationError("Job is not open for applications")
	}

	app := &domain.Application{
		JobID:     jobID,
		StudentID: studentID,
		Status:    domain.ApplicationStatusPending,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListByJob returns applications for one posting, oldest first.
func (s *ApplicationService) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	return s.applications.ListByJob(ctx, jobID)
}

// CompanyApplications returns applications to the caller's postings.
func (s *ApplicationService) CompanyApplications(ctx context.Context, companyID int64, filter repository.ApplicationFilter) ([]repository.ApplicationDetail, error) {
	return s.applications.ListByCompany(ctx, companyID, filter)
}

// UpdateStatus changes an application's review state. Only the company
// owning the posting may do so; ownership is checked against the
// resolved identity, never a client-supplied id.
func (s *ApplicationService) UpdateStatus(ctx context.Context, companyID, applicationID int64, status domain.ApplicationStatus) error {
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	job, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return err
	}
	if job.CompanyID != companyID {
		return apperrors.NewForbidden("Insufficient permissions")
	}

	oldStatus := app.Status
	if err := s.applications.UpdateStatus(ctx, applicationID, status); err != nil {
		return err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventApplicationStatusChanged,
		Actor:     events.Actor{Type: domain.RoleCompany, ID: companyID},
		Timestamp: time.Now(),
		Payload: events.ApplicationStatusChangedPayload{
			ApplicationID: app.ID,
			JobID:         app.JobID,
			StudentID:     app.StudentID,
			OldStatus:     oldStatus,
			NewStatus:     status,
		},
	})
	return nil
}
