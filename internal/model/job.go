package model

import "time"

// Job represents a row in the `jobs` table. A job belongs to one
// company and optionally carries a companion Location row keyed by
// (entity_type="job", entity_id=job.ID). The location columns are not
// stored on the job itself; when a read enriches a job with its
// location the optional pointer fields below are populated.
type Job struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Salary      float64   `json:"salary,omitempty"`
	JobType     string    `json:"job_type,omitempty"`
	PostedAt    time.Time `json:"posted_at"`

	// Location enrichment, filled best-effort on reads. Nil when the
	// job has no location row or the lookup failed.
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Address    *string  `json:"address,omitempty"`
	PostalCode *string  `json:"cp,omitempty"`
}

// JobSummary is the owner-facing listing row: job columns plus the
// number of applications received, aggregated in SQL.
type JobSummary struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Salary            float64   `json:"salary,omitempty"`
	JobType           string    `json:"job_type,omitempty"`
	PostedAt          time.Time `json:"posted_at"`
	ApplicationsCount int       `json:"applications_count"`
}
