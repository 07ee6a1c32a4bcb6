package domain

import "time"

// CompanyStatus represents lifecycle states for a recruiting company.
type CompanyStatus string

const (
	CompanyStatusPending   CompanyStatus = "pending"
	CompanyStatusApproved  CompanyStatus = "approved"
	CompanyStatusRejected  CompanyStatus = "rejected"
	CompanyStatusSuspended CompanyStatus = "suspended"
)

// Company is the domain model for a recruiting company account.
type Company struct {
	ID            int64
	Email         string
	PasswordHash  string
	CompanyName   string
	ContactPerson string
	Industry      *string
	Website       *string
	Location      *string
	CompanySize   *string
	Description   *string
	ContactEmail  *string
	ContactPhone  *string
	Status        CompanyStatus
	LastLoginAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CompanyProfile carries the updatable profile fields.
type CompanyProfile struct {
	CompanyName   string
	Industry      *string
	Website       *string
	Location      *string
	CompanySize   *string
	Description   *string
	ContactPerson string
	ContactEmail  *string
	ContactPhone  *string
}
