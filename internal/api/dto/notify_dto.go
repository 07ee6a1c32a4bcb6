package dto

// NotifyStudentsRequest payload for job announcements.
type NotifyStudentsRequest struct {
	JobID    int64    `json:"jobId"`
	Year     int      `json:"year"`
	Branches []string `json:"branches"`
	Message  string   `json:"message"`
}
