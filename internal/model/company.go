package model

import "time"

// Company represents a row in the `companies` table. Each company is
// owned by exactly one user (companies.user_id is unique) and may post
// any number of jobs.
type Company struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CompanyProfile is the owner-keyed company view joined with the owning
// user's contact fields. It mirrors the SELECT used when a company is
// looked up by its owner rather than by its own id.
type CompanyProfile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email"`
}
