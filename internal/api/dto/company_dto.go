package dto

// CompanyProfileRequest payload for profile updates.
type CompanyProfileRequest struct {
	CompanyName   string  `json:"companyName"`
	Industry      *string `json:"industry"`
	Website       *string `json:"website"`
	Location      *string `json:"location"`
	CompanySize   *string `json:"companySize"`
	Description   *string `json:"description"`
	ContactPerson string  `json:"contactPerson"`
	ContactEmail  *string `json:"contactEmail"`
	ContactPhone  *string `json:"contactPhone"`
}
