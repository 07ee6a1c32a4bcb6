package events

import (
	"time"

	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventJobPosted                EventType = "job_posted"
	EventJobApproved              EventType = "job_approved"
	EventJobRejected              EventType = "job_rejected"
	EventApplicationStatusChanged EventType = "application_status_changed"
	EventStudentsNotified         EventType = "students_notified"
)

// Actor encapsulates the identity that triggered an event.
type Actor struct {
	Type domain.Role `json:"type"`
	ID   int64       `json:"id"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// JobPostedPayload payload.
type JobPostedPayload struct {
	JobID     int64  `json:"job_id"`
	CompanyID int64  `json:"company_id"`
	JobTitle  string `json:"job_title"`
}

// JobModeratedPayload payload for approvals and rejections.
type JobModeratedPayload struct {
	JobID     int64            `json:"job_id"`
	CompanyID int64            `json:"company_id"`
	NewStatus domain.JobStatus `json:"new_status"`
}

// ApplicationStatusChangedPayload payload.
type ApplicationStatusChangedPayload struct {
	ApplicationID int64                    `json:"application_id"`
	JobID         int64                    `json:"job_id"`
	StudentID     int64                    `json:"student_id"`
	OldStatus     domain.ApplicationStatus `json:"old_status"`
	NewStatus     domain.ApplicationStatus `json:"new_status"`
}

// StudentsNotifiedPayload payload.
type StudentsNotifiedPayload struct {
	JobID    int64    `json:"job_id"`
	Year     int      `json:"year"`
	Branches []string `json:"branches"`
	Count    int      `json:"count"`
}
