package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/job-board-api/internal/model"
)

// ApplicationRepo encapsulates queries against the applications table.
type ApplicationRepo struct {
	db *sql.DB
}

// NewApplicationRepo constructs an ApplicationRepo with the provided DB handle.
func NewApplicationRepo(db *sql.DB) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// Create inserts a new application row. Status and applied_at are set
// by the caller (always pending / now at creation).
func (r *ApplicationRepo) Create(ctx context.Context, a *model.Application) error {
	const q = `INSERT INTO applications (id, job_id, user_id, status, applied_at, cover_letter, resume)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		a.ID, a.JobID, a.UserID, a.Status, a.AppliedAt, a.CoverLetter, a.Resume)
	return err
}

// GetByID fetches an application by id.
func (r *ApplicationRepo) GetByID(ctx context.Context, id string) (*model.Application, error) {
	const q = `SELECT id, job_id, user_id, status, applied_at, cover_letter, resume
		FROM applications WHERE id = ? LIMIT 1`
	var a model.Application
	var cover, resume sql.NullString
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&a.ID, &a.JobID, &a.UserID, &a.Status, &a.AppliedAt, &cover, &resume)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	a.CoverLetter = cover.String
	a.Resume = resume.String
	return &a, nil
}

// UpdateStatus sets the status of one application and returns the
// refreshed row. ErrApplicationNotFound when the row does not exist.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id, status string) (*model.Application, error) {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE applications SET status = ? WHERE id = ?", status, id); err != nil {
		return nil, err
	}
	// RowsAffected is 0 both for a missing row and for a same-value
	// write, so existence is settled by the re-read.
	return r.GetByID(ctx, id)
}
