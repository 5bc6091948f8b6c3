package model

import "time"

// Application statuses. Every application starts as pending; any value
// in the set is reachable from any other, there is no terminal state.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s belongs to the application status enum.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}

// Application represents a row in the `applications` table. Status is
// the only field that changes after creation.
type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	UserID      string    `json:"user_id"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	Resume      string    `json:"resume,omitempty"`
}

// ApplicationDetail is the company-facing view of an application,
// enriched with the applicant's contact fields and the job title.
type ApplicationDetail struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	UserID      string    `json:"user_id"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Description string    `json:"description,omitempty"`
	JobTitle    string    `json:"job_title"`
}
