package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/job-board-api/internal/model"
)

// jobPatchOrder fixes the order of job patch columns in UPDATE statements.
var jobPatchOrder = []string{"title", "description", "salary", "job_type"}

// JobRepo encapsulates queries against the jobs table. Location
// columns never appear here; the companion location row is owned by
// LocationRepo and stitched on by the service layer.
type JobRepo struct {
	db *sql.DB
}

// NewJobRepo constructs a JobRepo with the provided DB handle.
func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{db: db}
}

// Create inserts a new job row. The caller supplies id and posted_at.
func (r *JobRepo) Create(ctx context.Context, j *model.Job) error {
	const q = `INSERT INTO jobs (id, company_id, title, description, salary, job_type, posted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		j.ID, j.CompanyID, j.Title, j.Description, j.Salary, j.JobType, j.PostedAt)
	return err
}

// GetByID fetches a job by id. Returns ErrJobNotFound when absent.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	const q = `SELECT id, company_id, title, description, salary, job_type, posted_at
		FROM jobs WHERE id = ? LIMIT 1`
	var j model.Job
	var salary sql.NullFloat64
	var jobType sql.NullString
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&j.ID, &j.CompanyID, &j.Title, &j.Description, &salary, &jobType, &j.PostedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	j.Salary = salary.Float64
	j.JobType = jobType.String
	return &j, nil
}

// Update applies the given column→value patch to one job and returns
// the refreshed row. ErrJobNotFound when the job does not exist.
func (r *JobRepo) Update(ctx context.Context, id string, cols map[string]any) (*model.Job, error) {
	set, args := buildSet(cols, jobPatchOrder)
	if set == "" {
		// Nothing to persist on the jobs table; still confirm existence
		// so the caller gets NotFound semantics.
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	if _, err := r.db.ExecContext(ctx, "UPDATE jobs SET "+set+" WHERE id = ?", args...); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a job row and returns the deleted record.
// ErrJobNotFound when the row was absent.
func (r *JobRepo) Delete(ctx context.Context, id string) (*model.Job, error) {
	j, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM jobs WHERE id = ?", id); err != nil {
		return nil, err
	}
	return j, nil
}
