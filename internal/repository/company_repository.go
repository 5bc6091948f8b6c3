package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/job-board-api/internal/model"
)

// CompanyRepo encapsulates queries against the companies table and the
// owner-keyed listing joins over jobs and applications.
type CompanyRepo struct {
	db *sql.DB
}

// NewCompanyRepo constructs a CompanyRepo with the provided DB handle.
func NewCompanyRepo(db *sql.DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// GetByID fetches a company by its own id.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*model.Company, error) {
	const q = `SELECT id, user_id, name, description, website, created_at
		FROM companies WHERE id = ? LIMIT 1`
	var c model.Company
	var description, website sql.NullString
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&c.ID, &c.UserID, &c.Name, &description, &website, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	c.Description = description.String
	c.Website = website.String
	return &c, nil
}

// GetByOwner fetches the company owned by the given user, joined with
// the owner's contact fields.
func (r *CompanyRepo) GetByOwner(ctx context.Context, userID string) (*model.CompanyProfile, error) {
	const q = `SELECT c.id, c.name, c.description, c.website, c.created_at,
			u.address, u.phone, u.email
		FROM users u
		INNER JOIN companies c ON c.user_id = u.id
		WHERE u.id = ? LIMIT 1`
	var p model.CompanyProfile
	var description, website, address, phone sql.NullString
	err := r.db.QueryRowContext(ctx, q, userID).
		Scan(&p.ID, &p.Name, &description, &website, &p.CreatedAt, &address, &phone, &p.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	p.Description = description.String
	p.Website = website.String
	p.Address = address.String
	p.Phone = phone.String
	return &p, nil
}

// ListJobsByOwner returns every job posted by the company of the given
// user, with the number of received applications aggregated per job.
// Zero rows is a valid result, not an error.
func (r *CompanyRepo) ListJobsByOwner(ctx context.Context, userID string) ([]model.JobSummary, error) {
	const q = `SELECT j.id, j.title, j.description, j.salary, j.job_type, j.posted_at,
			COALESCE(COUNT(a.id), 0) AS applications_count
		FROM jobs j
		JOIN companies c ON j.company_id = c.id
		JOIN users u ON u.id = c.user_id
		LEFT JOIN applications a ON a.job_id = j.id
		WHERE u.id = ?
		GROUP BY j.id, j.title, j.description, j.salary, j.job_type, j.posted_at`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.JobSummary
	for rows.Next() {
		var j model.JobSummary
		var salary sql.NullFloat64
		var jobType sql.NullString
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &salary, &jobType,
			&j.PostedAt, &j.ApplicationsCount); err != nil {
			return nil, err
		}
		j.Salary = salary.Float64
		j.JobType = jobType.String
		out = append(out, j)
	}
	return out, rows.Err()
}

// ListApplicationsByOwner returns every application received across the
// jobs of the given user's company, enriched with applicant contact
// fields and the job title. Zero rows is a valid result.
func (r *CompanyRepo) ListApplicationsByOwner(ctx context.Context, userID string) ([]model.ApplicationDetail, error) {
	const q = `SELECT a.id, a.job_id, a.user_id, a.status, a.applied_at,
			candidate.first_name, candidate.last_name, candidate.email,
			candidate.address, candidate.phone, candidate.description,
			j.title AS job_title
		FROM applications a
		INNER JOIN jobs j ON a.job_id = j.id
		INNER JOIN companies c ON j.company_id = c.id
		INNER JOIN users u ON c.user_id = u.id
		INNER JOIN users candidate ON a.user_id = candidate.id
		WHERE u.id = ?`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ApplicationDetail
	for rows.Next() {
		var d model.ApplicationDetail
		var address, phone, description sql.NullString
		if err := rows.Scan(&d.ID, &d.JobID, &d.UserID, &d.Status, &d.AppliedAt,
			&d.FirstName, &d.LastName, &d.Email, &address, &phone, &description,
			&d.JobTitle); err != nil {
			return nil, err
		}
		d.Address = address.String
		d.Phone = phone.String
		d.Description = description.String
		out = append(out, d)
	}
	return out, rows.Err()
}
