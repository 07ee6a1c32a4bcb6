package domain

import "time"

// Faculty models a placement-cell administrator.
type Faculty struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Department   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
