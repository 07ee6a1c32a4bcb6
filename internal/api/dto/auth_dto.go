package dto

import "time"

// CompanyRegisterRequest payload for new company accounts.
type CompanyRegisterRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
}

// LoginRequest payload for every login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
