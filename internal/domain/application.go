package domain

import "time"

// ApplicationStatus enumerates review states for applications.
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusHired       ApplicationStatus = "hired"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// Application links a student to a job posting.
type Application struct {
	ID        int64
	JobID     int64
	StudentID int64
	Status    ApplicationStatus
	AppliedAt time.Time
	UpdatedAt time.Time
}
