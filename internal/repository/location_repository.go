package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/job-board-api/internal/model"
)

// locationPatchOrder fixes the order of location patch columns in
// UPDATE statements.
var locationPatchOrder = []string{
	"entity_type", "entity_id", "latitude", "longitude", "address", "cp",
}

// LocationRepo encapsulates queries against the locations table. The
// (entity_type, entity_id) pair carries a unique index, so at most one
// row can exist per referenced entity; a racing double-insert surfaces
// as ErrLocationExists instead of a duplicate row.
type LocationRepo struct {
	db *sql.DB
}

// NewLocationRepo constructs a LocationRepo with the provided DB handle.
func NewLocationRepo(db *sql.DB) *LocationRepo {
	return &LocationRepo{db: db}
}

// Create inserts a new location row.
func (r *LocationRepo) Create(ctx context.Context, l *model.Location) error {
	const q = `INSERT INTO locations (id, entity_type, entity_id, latitude, longitude, address, cp, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		l.ID, l.EntityType, l.EntityID, l.Latitude, l.Longitude, l.Address, l.PostalCode, l.CreatedAt)
	if isDuplicate(err) {
		return ErrLocationExists
	}
	return err
}

// GetByID fetches a location by primary key.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*model.Location, error) {
	const q = `SELECT id, entity_type, entity_id, latitude, longitude, address, cp, created_at
		FROM locations WHERE id = ? LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

// GetByEntity fetches the location attached to the given entity.
// Returns ErrLocationNotFound when the entity has no location; callers
// that treat absence as valid translate that themselves.
func (r *LocationRepo) GetByEntity(ctx context.Context, ref model.EntityRef) (*model.Location, error) {
	const q = `SELECT id, entity_type, entity_id, latitude, longitude, address, cp, created_at
		FROM locations WHERE entity_type = ? AND entity_id = ? LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, q, ref.Kind, ref.ID))
}

// Update applies the given column→value patch to one location and
// returns the refreshed row.
func (r *LocationRepo) Update(ctx context.Context, id string, cols map[string]any) (*model.Location, error) {
	set, args := buildSet(cols, locationPatchOrder)
	if set == "" {
		return nil, errors.New("repository: empty location patch")
	}
	args = append(args, id)
	if _, err := r.db.ExecContext(ctx, "UPDATE locations SET "+set+" WHERE id = ?", args...); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a location by primary key and returns the deleted row.
func (r *LocationRepo) Delete(ctx context.Context, id string) (*model.Location, error) {
	l, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM locations WHERE id = ?", id); err != nil {
		return nil, err
	}
	return l, nil
}

// DeleteByEntity removes the location attached to the given entity and
// returns it. ErrLocationNotFound when the entity had none.
func (r *LocationRepo) DeleteByEntity(ctx context.Context, ref model.EntityRef) (*model.Location, error) {
	l, err := r.GetByEntity(ctx, ref)
	if err != nil {
		return nil, err
	}
	const q = "DELETE FROM locations WHERE entity_type = ? AND entity_id = ?"
	if _, err := r.db.ExecContext(ctx, q, ref.Kind, ref.ID); err != nil {
		return nil, err
	}
	return l, nil
}

func (r *LocationRepo) scanOne(row *sql.Row) (*model.Location, error) {
	var l model.Location
	var address, cp sql.NullString
	err := row.Scan(&l.ID, &l.EntityType, &l.EntityID, &l.Latitude, &l.Longitude,
		&address, &cp, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	l.Address = address.String
	l.PostalCode = cp.String
	return &l, nil
}
