package domain

import "time"

// JobStatus enumerates lifecycle states for job postings.
type JobStatus string

const (
	JobStatusPending  JobStatus = "pending"
	JobStatusApproved JobStatus = "approved"
	JobStatusRejected JobStatus = "rejected"
)

// JobPosting is a job opening submitted by a company and moderated by
// the placement cell.
type JobPosting struct {
	ID          int64
	CompanyID   int64
	JobTitle    string
	Department  string
	Description string
	Location    *string
	JobType     *string
	SalaryRange *string
	Status      JobStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
