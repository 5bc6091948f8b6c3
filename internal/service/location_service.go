// Package service holds the business logic between handlers and
// repositories: input validation, ownership-agnostic orchestration and
// the mapping of repository sentinels into the apperr taxonomy.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/job-board-api/internal/apperr"
	"github.com/iliyamo/job-board-api/internal/model"
	"github.com/iliyamo/job-board-api/internal/repository"
)

// LocationStore is the persistence surface LocationService needs. It is
// satisfied by *repository.LocationRepo and by in-memory fakes in tests.
type LocationStore interface {
	Create(ctx context.Context, l *model.Location) error
	GetByID(ctx context.Context, id string) (*model.Location, error)
	GetByEntity(ctx context.Context, ref model.EntityRef) (*model.Location, error)
	Update(ctx context.Context, id string, cols map[string]any) (*model.Location, error)
	Delete(ctx context.Context, id string) (*model.Location, error)
	DeleteByEntity(ctx context.Context, ref model.EntityRef) (*model.Location, error)
}

// LocationInput carries the fields accepted when creating a location.
// Latitude and longitude are pointers so that an absent coordinate can
// be told apart from a legitimate zero (the equator exists).
type LocationInput struct {
	EntityType string   `json:"entity_type"`
	EntityID   string   `json:"entity_id"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Address    string   `json:"address"`
	PostalCode string   `json:"cp"`
}

// LocationPatch carries a partial update. Only non-nil fields are
// persisted; a patch with no set fields is rejected.
type LocationPatch struct {
	EntityType *string  `json:"entity_type"`
	EntityID   *string  `json:"entity_id"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Address    *string  `json:"address"`
	PostalCode *string  `json:"cp"`
}

// LocationService implements location CRUD. It is also consumed by
// CompanyService, which attaches locations to jobs as a best-effort
// side effect of job writes.
type LocationService struct {
	locations LocationStore
}

// NewLocationService constructs a LocationService.
func NewLocationService(locations LocationStore) *LocationService {
	return &LocationService{locations: locations}
}

// Create validates the input and inserts a new location. The required
// fields are checked in a fixed order and each missing one produces its
// own message. A second location for the same entity is a Conflict.
func (s *LocationService) Create(ctx context.Context, in LocationInput) (*model.Location, error) {
	if in.EntityType == "" {
		return nil, apperr.BadRequest(`"entity_type" is required`)
	}
	if in.EntityID == "" {
		return nil, apperr.BadRequest(`"entity_id" is required`)
	}
	if in.Latitude == nil {
		return nil, apperr.BadRequest(`"latitude" is required`)
	}
	if in.Longitude == nil {
		return nil, apperr.BadRequest(`"longitude" is required`)
	}
	l := &model.Location{
		ID:         uuid.NewString(),
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
		Latitude:   *in.Latitude,
		Longitude:  *in.Longitude,
		Address:    in.Address,
		PostalCode: in.PostalCode,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.locations.Create(ctx, l); err != nil {
		if errors.Is(err, repository.ErrLocationExists) {
			return nil, apperr.Conflict("a location already exists for this entity")
		}
		return nil, apperr.Internal(err)
	}
	return l, nil
}

// GetByID returns one location by primary key.
func (s *LocationService) GetByID(ctx context.Context, id string) (*model.Location, error) {
	if id == "" {
		return nil, apperr.BadRequest(`"locationId" is required`)
	}
	l, err := s.locations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, apperr.NotFound("location not found")
		}
		return nil, apperr.Internal(err)
	}
	return l, nil
}

// GetByEntity returns the location attached to an entity. Absence is a
// valid result, reported as (nil, nil): callers distinguish "no
// location configured" from an actual failure.
func (s *LocationService) GetByEntity(ctx context.Context, entityType, entityID string) (*model.Location, error) {
	if entityType == "" {
		return nil, apperr.BadRequest(`"entityType" is required`)
	}
	if entityID == "" {
		return nil, apperr.BadRequest(`"entityId" is required`)
	}
	l, err := s.locations.GetByEntity(ctx, model.EntityRef{Kind: entityType, ID: entityID})
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, nil
		}
		return nil, apperr.Internal(err)
	}
	return l, nil
}

// Update merges the non-nil fields of patch into an existing location.
// A patch that sets nothing is rejected before touching the store.
func (s *LocationService) Update(ctx context.Context, id string, patch LocationPatch) (*model.Location, error) {
	if id == "" {
		return nil, apperr.BadRequest(`"locationId" is required`)
	}
	cols := map[string]any{}
	if patch.EntityType != nil {
		cols["entity_type"] = *patch.EntityType
	}
	if patch.EntityID != nil {
		cols["entity_id"] = *patch.EntityID
	}
	if patch.Latitude != nil {
		cols["latitude"] = *patch.Latitude
	}
	if patch.Longitude != nil {
		cols["longitude"] = *patch.Longitude
	}
	if patch.Address != nil {
		cols["address"] = *patch.Address
	}
	if patch.PostalCode != nil {
		cols["cp"] = *patch.PostalCode
	}
	if len(cols) == 0 {
		return nil, apperr.BadRequest("no fields to update")
	}
	l, err := s.locations.Update(ctx, id, cols)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, apperr.NotFound("location not found")
		}
		return nil, apperr.Internal(err)
	}
	return l, nil
}

// Delete removes one location by primary key and returns it.
func (s *LocationService) Delete(ctx context.Context, id string) (*model.Location, error) {
	if id == "" {
		return nil, apperr.BadRequest(`"locationId" is required`)
	}
	l, err := s.locations.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, apperr.NotFound("location not found")
		}
		return nil, apperr.Internal(err)
	}
	return l, nil
}

// DeleteByEntity removes the location attached to an entity. Absence is
// tolerated and reported as (nil, nil).
func (s *LocationService) DeleteByEntity(ctx context.Context, entityType, entityID string) (*model.Location, error) {
	if entityType == "" {
		return nil, apperr.BadRequest(`"entityType" is required`)
	}
	if entityID == "" {
		return nil, apperr.BadRequest(`"entityId" is required`)
	}
	l, err := s.locations.DeleteByEntity(ctx, model.EntityRef{Kind: entityType, ID: entityID})
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, nil
		}
		return nil, apperr.Internal(err)
	}
	return l, nil
}
