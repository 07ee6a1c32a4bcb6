package domain

import "time"

// Student is the domain model for a placement-eligible student.
type Student struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        *string
	ResumeURL    *string
	Year         int
	Branch       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
