// Package queue defines message payloads exchanged over the message
// broker and the best-effort publisher that sends them. Consumers live
// in other services (search indexing, notifications); this service only
// publishes.
package queue

// Queue names double as routing keys on the default exchange.
const (
	JobCreatedQueue        = "job.created"
	JobDeletedQueue        = "job.deleted"
	ApplicationStatusQueue = "application.status_changed"
)

// JobCreatedEvent is published after a job row has been inserted. It
// carries enough data for downstream consumers to index or notify
// without querying the primary database. Location fields are present
// only when the companion location row was created.
type JobCreatedEvent struct {
	JobID     string   `json:"job_id"`
	CompanyID string   `json:"company_id"`
	Title     string   `json:"title"`
	JobType   string   `json:"job_type,omitempty"`
	Salary    float64  `json:"salary,omitempty"`
	PostedAt  string   `json:"posted_at"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   *string  `json:"address,omitempty"`
}

// JobDeletedEvent is published after a job row has been removed.
type JobDeletedEvent struct {
	JobID     string `json:"job_id"`
	CompanyID string `json:"company_id"`
	DeletedAt string `json:"deleted_at"`
}

// ApplicationStatusChangedEvent is published after an application's
// status has been updated by the owning company.
type ApplicationStatusChangedEvent struct {
	ApplicationID string `json:"application_id"`
	JobID         string `json:"job_id"`
	UserID        string `json:"user_id"`
	Status        string `json:"status"`
	ChangedAt     string `json:"changed_at"`
}
