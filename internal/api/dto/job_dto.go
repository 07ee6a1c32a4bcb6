package dto

// PostJobRequest payload for new job postings.
type PostJobRequest struct {
	JobTitle    string  `json:"jobTitle"`
	Department  string  `json:"department"`
	Description string  `json:"description"`
	Location    *string `json:"location"`
	JobType     *string `json:"jobType"`
	SalaryRange *string `json:"salaryRange"`
}
