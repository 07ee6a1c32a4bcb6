package domain

import "time"

// Notification is a message delivered to a student about a job posting.
type Notification struct {
	ID         int64
	StudentID  int64
	JobID      *int64
	Message    string
	Read       bool
	NotifiedAt time.Time
}
