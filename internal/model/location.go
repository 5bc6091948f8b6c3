package model

import "time"

// EntityKindJob is the only entity kind currently associated with
// locations. The tag lives in its own constant so new kinds can be
// added without touching the repository.
const EntityKindJob = "job"

// EntityRef is the polymorphic association key of a location: the kind
// of the referenced entity plus its id. The `locations` table stores it
// as the (entity_type, entity_id) column pair, guarded by a unique
// index so at most one location exists per referenced entity.
type EntityRef struct {
	Kind string
	ID   string
}

// JobRef builds the EntityRef for a job id.
func JobRef(jobID string) EntityRef {
	return EntityRef{Kind: EntityKindJob, ID: jobID}
}

// Location represents a row in the `locations` table. It attaches
// geographic data to an arbitrary entity via EntityRef.
type Location struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Address    string    `json:"address,omitempty"`
	PostalCode string    `json:"cp,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
