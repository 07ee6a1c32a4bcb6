package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
	"github.com/CSAbhinav3/IWP-CIA3/internal/events"
	apperrors "github.com/CSAbhinav3/IWP-CIA3/pkg/util"
)

type applicationFixture struct {
	svc          *ApplicationService
	applications *memApplicationRepo
	jobs         *memJobRepo
	dispatcher   *recordingDispatcher
}

func newApplicationFixture() *applicationFixture {
	applications := newMemApplicationRepo()
	jobs := newMemJobRepo()
	dispatcher := &recordingDispatcher{}
	return &applicationFixture{
		svc:          NewApplicationService(applications, jobs, dispatcher),
		applications: applications,
		jobs:         jobs,
		dispatcher:   dispatcher,
	}
}

func TestApplyToApprovedJob(t *testing.T) {
	f := newApplicationFixture()
	job := f.jobs.seed(&domain.JobPosting{CompanyID: 42, Status: domain.JobStatusApproved})

	app, err := f.svc.Apply(context.Background(), 9, job.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(9), app.StudentID)
	assert.Equal(t, job.ID, app.JobID)
	assert.Equal(t, domain.ApplicationStatusPending, app.Status)
}

func TestApplyToUnapprovedJobFails(t *testing.T) {
	f := newApplicationFixture()

	for _, status := range []domain.JobStatus{domain.JobStatusPending, domain.JobStatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			job := f.jobs.seed(&domain.JobPosting{CompanyID: 42, Status: status})

			_, err := f.svc.Apply(context.Background(), 9, job.ID)
			require.Error(t, err)
			mapped := apperrors.ToDomainError(err)
			assert.Equal(t, 400, mapped.HTTPStatus)
			assert.Equal(t, "Job is not open for applications", mapped.Message)
		})
	}
}

func TestApplyToMissingJobFails(t *testing.T) {
	f := newApplicationFixture()

	_, err := f.svc.Apply(context.Background(), 9, 404)
	assert.Error(t, err)
}

func TestUpdateStatusRequiresOwningCompany(t *testing.T) {
	f := newApplicationFixture()
	job := f.jobs.seed(&domain.JobPosting{CompanyID: 42, Status: domain.JobStatusApproved})
	app := f.applications.seed(&domain.Application{JobID: job.ID, StudentID: 9, Status: domain.ApplicationStatusPending})

	err := f.svc.UpdateStatus(context.Background(), 77, app.ID, domain.ApplicationStatusShortlisted)
	require.Error(t, err)
	mapped := apperrors.ToDomainError(err)
	assert.Equal(t, 403, mapped.HTTPStatus)
	assert.Equal(t, "Insufficient permissions", mapped.Message)

	stored, err := f.applications.GetByID(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusPending, stored.Status)
	assert.Empty(t, f.dispatcher.events())
}

func TestUpdateStatusByOwnerPublishesChange(t *testing.T) {
	f := newApplicationFixture()
	job := f.jobs.seed(&domain.JobPosting{CompanyID: 42, Status: domain.JobStatusApproved})
	app := f.applications.seed(&domain.Application{JobID: job.ID, StudentID: 9, Status: domain.ApplicationStatusPending})

	require.NoError(t, f.svc.UpdateStatus(context.Background(), 42, app.ID, domain.ApplicationStatusHired))

	stored, err := f.applications.GetByID(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusHired, stored.Status)

	published := f.dispatcher.events()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventApplicationStatusChanged, published[0].Type)
	payload, ok := published[0].Payload.(events.ApplicationStatusChangedPayload)
	require.True(t, ok)
	assert.Equal(t, domain.ApplicationStatusPending, payload.OldStatus)
	assert.Equal(t, domain.ApplicationStatusHired, payload.NewStatus)
	assert.Equal(t, int64(9), payload.StudentID)
}
