package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
	"github.com/CSAbhinav3/IWP-CIA3/internal/events"
	"github.com/CSAbhinav3/IWP-CIA3/internal/repository"
)

// JobService covers posting and moderating job postings.
type JobService struct {
	jobs       repository.JobRepository
	dispatcher events.Dispatcher
}

// NewJobService builds the service.
func NewJobService(jobs repository.JobRepository, dispatcher events.Dispatcher) *JobService {
	return &JobService{jobs: jobs, dispatcher: dispatcher}
}

// PostJobInput carries the fields a company submits for a new posting.
type PostJobInput struct {
	JobTitle    string
	Department  string
	Description string
	Location    *string
	JobType     *string
	SalaryRange *string
}

// PostJob creates a pending posting owned by the calling company. The
// company id always comes from the resolved identity, never the payload.
func (s *JobService) PostJob(ctx context.Context, companyID int64, input PostJobInput) (*domain.JobPosting, error) {
	job := &domain.JobPosting{
		CompanyID:   companyID,
		JobTitle:    input.JobTitle,
		Department:  input.Department,
		Description: input.Description,
		Location:    input.Location,
		JobType:     input.JobType,
		SalaryRange: input.SalaryRange,
		Status:      domain.JobStatusPending,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventJobPosted,
		Actor:     events.Actor{Type: domain.RoleCompany, ID: companyID},
		Timestamp: time.Now(),
		Payload: events.JobPostedPayload{
			JobID:     job.ID,
			CompanyID: job.CompanyID,
			JobTitle:  job.JobTitle,
		},
	})
	return job, nil
}

// ListJobs returns every posting for the placement cell.
func (s *JobService) ListJobs(ctx context.Context) ([]domain.JobPosting, error) {
	return s.jobs.List(ctx)
}

// CompanyJobs returns the caller's postings with application counts.
func (s *JobService) CompanyJobs(ctx context.Context, companyID int64, limit int) ([]repository.JobWithApplications, error) {
	return s.jobs.ListByCompany(ctx, companyID, limit)
}

// Approve marks a posting approved and announces the change.
func (s *JobService) Approve(ctx context.Context, actor events.Actor, jobID int64) error {
	return s.moderate(ctx, actor, jobID, domain.JobStatusApproved, events.EventJobApproved)
}

// Reject marks a posting rejected.
func (s *JobService) Reject(ctx context.Context, actor events.Actor, jobID int64) error {
	return s.moderate(ctx, actor, jobID, domain.JobStatusRejected, events.EventJobRejected)
}

func (s *JobService) moderate(ctx context.Context, actor events.Actor, jobID int64, status domain.JobStatus, eventType events.EventType) error {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if err := s.jobs.UpdateStatus(ctx, jobID, status); err != nil {
		return err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload: events.JobModeratedPayload{
			JobID:     job.ID,
			CompanyID: job.CompanyID,
			NewStatus: status,
		},
	})
	return nil
}
