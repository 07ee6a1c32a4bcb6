package dto

// CreateApplicationRequest payload for student applications.
type CreateApplicationRequest struct {
	JobID int64 `json:"jobId"`
}

// UpdateApplicationStatusRequest payload for company review decisions.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}
