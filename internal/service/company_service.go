package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/job-board-api/internal/apperr"
	"github.com/iliyamo/job-board-api/internal/model"
	"github.com/iliyamo/job-board-api/internal/queue"
	"github.com/iliyamo/job-board-api/internal/repository"
)

// CompanyStore is the persistence surface for company reads and the
// owner-keyed listings.
type CompanyStore interface {
	GetByID(ctx context.Context, id string) (*model.Company, error)
	GetByOwner(ctx context.Context, userID string) (*model.CompanyProfile, error)
	ListJobsByOwner(ctx context.Context, userID string) ([]model.JobSummary, error)
	ListApplicationsByOwner(ctx context.Context, userID string) ([]model.ApplicationDetail, error)
}

// JobStore is the persistence surface for job writes and reads.
type JobStore interface {
	Create(ctx context.Context, j *model.Job) error
	GetByID(ctx context.Context, id string) (*model.Job, error)
	Update(ctx context.Context, id string, cols map[string]any) (*model.Job, error)
	Delete(ctx context.Context, id string) (*model.Job, error)
}

// EventPublisher sends domain events to the broker. Satisfied by
// *queue.Publisher; nil disables publishing entirely.
type EventPublisher interface {
	Publish(ctx context.Context, queueName string, event any) error
}

// JobInput carries the fields accepted when posting a job. When
// latitude, longitude and address are all present a companion location
// row is created alongside the job.
type JobInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CompanyID   string   `json:"company_id"`
	Salary      float64  `json:"salary"`
	JobType     string   `json:"job_type"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Address     *string  `json:"address"`
	PostalCode  *string  `json:"cp"`
}

// JobPatch carries a partial job update. Job columns and location
// fields travel together in one body; UpdateJob splits them.
type JobPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Salary      *float64 `json:"salary"`
	JobType     *string  `json:"job_type"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Address     *string  `json:"address"`
	PostalCode  *string  `json:"cp"`
}

// ApplicationStatusPatch carries the only mutable application field.
type ApplicationStatusPatch struct {
	Status *string `json:"status"`
}

// CompanyService implements the company-facing surface: company and
// listing reads, the job lifecycle with its best-effort location
// pairing, and application status updates.
//
// The job↔location pairing is a two-step, non-atomic write: the job row
// always commits first and on its own. The location step is attempted
// afterwards and its failure is logged and discarded, never surfaced
// and never a reason to roll back the job.
type CompanyService struct {
	companies    CompanyStore
	jobs         JobStore
	applications ApplicationStore
	locations    *LocationService
	events       EventPublisher
	log          *slog.Logger
}

// NewCompanyService constructs a CompanyService. events may be nil to
// disable broker publishing; log must not be nil.
func NewCompanyService(
	companies CompanyStore,
	jobs JobStore,
	applications ApplicationStore,
	locations *LocationService,
	events EventPublisher,
	log *slog.Logger,
) *CompanyService {
	return &CompanyService{
		companies:    companies,
		jobs:         jobs,
		applications: applications,
		locations:    locations,
		events:       events,
		log:          log,
	}
}

// GetCompanyInfoByCompanyID returns a company by its own id.
func (s *CompanyService) GetCompanyInfoByCompanyID(ctx context.Context, companyID string) (*model.Company, error) {
	if companyID == "" {
		return nil, apperr.BadRequest(`"companyId" is required`)
	}
	c, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, apperr.NotFound("company not found")
		}
		return nil, apperr.Internal(err)
	}
	return c, nil
}

// GetCompanyByOwnerID returns the company owned by the given user,
// enriched with the owner's contact fields.
func (s *CompanyService) GetCompanyByOwnerID(ctx context.Context, userID string) (*model.CompanyProfile, error) {
	if userID == "" {
		return nil, apperr.BadRequest(`"userId" is required`)
	}
	p, err := s.companies.GetByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, apperr.NotFound("company not found")
		}
		return nil, apperr.Internal(err)
	}
	return p, nil
}

// ListJobsByOwner returns the jobs posted by the given user's company.
// Zero jobs is a valid state and yields an empty list, never an error.
func (s *CompanyService) ListJobsByOwner(ctx context.Context, userID string) ([]model.JobSummary, error) {
	if userID == "" {
		return nil, apperr.BadRequest(`"user_id" is required`)
	}
	jobs, err := s.companies.ListJobsByOwner(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if jobs == nil {
		jobs = []model.JobSummary{}
	}
	return jobs, nil
}

// ListApplicationsByOwner returns the applications received across the
// given user's company jobs, enriched with applicant contact fields.
// Same empty-list-is-success policy as ListJobsByOwner.
func (s *CompanyService) ListApplicationsByOwner(ctx context.Context, userID string) ([]model.ApplicationDetail, error) {
	if userID == "" {
		return nil, apperr.BadRequest(`"user_id" is required`)
	}
	apps, err := s.companies.ListApplicationsByOwner(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if apps == nil {
		apps = []model.ApplicationDetail{}
	}
	return apps, nil
}

// CreateJob validates and inserts a new job, then attempts the two
// best-effort side effects: the companion location row (when latitude,
// longitude and address were all supplied) and the job.created event.
// Once the job insert succeeds the call succeeds; side-effect failures
// are logged and dropped.
func (s *CompanyService) CreateJob(ctx context.Context, in JobInput) (*model.Job, error) {
	if in.Title == "" {
		return nil, apperr.BadRequest(`"title" is required`)
	}
	if in.Description == "" {
		return nil, apperr.BadRequest(`"description" is required`)
	}
	if in.CompanyID == "" {
		return nil, apperr.BadRequest(`"company_id" is required`)
	}

	job := &model.Job{
		ID:          uuid.NewString(),
		CompanyID:   in.CompanyID,
		Title:       in.Title,
		Description: in.Description,
		Salary:      in.Salary,
		JobType:     in.JobType,
		PostedAt:    time.Now().UTC(),
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperr.Internal(err)
	}

	if in.Latitude != nil && in.Longitude != nil && in.Address != nil {
		locIn := LocationInput{
			EntityType: model.EntityKindJob,
			EntityID:   job.ID,
			Latitude:   in.Latitude,
			Longitude:  in.Longitude,
			Address:    *in.Address,
		}
		if in.PostalCode != nil {
			locIn.PostalCode = *in.PostalCode
		}
		loc, err := s.locations.Create(ctx, locIn)
		if err != nil {
			s.log.Warn("job location create failed", "job_id", job.ID, "err", err)
		} else {
			mergeLocation(job, loc)
		}
	}

	s.publish(ctx, queue.JobCreatedQueue, queue.JobCreatedEvent{
		JobID:     job.ID,
		CompanyID: job.CompanyID,
		Title:     job.Title,
		JobType:   job.JobType,
		Salary:    job.Salary,
		PostedAt:  job.PostedAt.Format(time.RFC3339),
		Latitude:  job.Latitude,
		Longitude: job.Longitude,
		Address:   job.Address,
	})
	return job, nil
}

// GetJobByID loads a job and enriches it with its location fields when
// a location row exists. The location read is best-effort: a lookup
// failure logs a warning and the job is returned bare.
func (s *CompanyService) GetJobByID(ctx context.Context, jobID string) (*model.Job, error) {
	if jobID == "" {
		return nil, apperr.BadRequest(`"jobId" is required`)
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, apperr.NotFound("job not found")
		}
		return nil, apperr.Internal(err)
	}
	loc, err := s.locations.GetByEntity(ctx, model.EntityKindJob, jobID)
	switch {
	case err != nil:
		s.log.Warn("job location lookup failed", "job_id", jobID, "err", err)
	case loc != nil:
		mergeLocation(job, loc)
	}
	return job, nil
}

// UpdateJob splits the patch into job columns and location fields. The
// job-column subset is persisted unconditionally (NotFound when the job
// is absent). When latitude, longitude and address are all present the
// companion location is upserted — updated if a row exists for
// (job, id), created otherwise — again best-effort.
func (s *CompanyService) UpdateJob(ctx context.Context, jobID string, patch JobPatch) (*model.Job, error) {
	if jobID == "" {
		return nil, apperr.BadRequest(`"jobId" is required`)
	}

	cols := map[string]any{}
	if patch.Title != nil {
		cols["title"] = *patch.Title
	}
	if patch.Description != nil {
		cols["description"] = *patch.Description
	}
	if patch.Salary != nil {
		cols["salary"] = *patch.Salary
	}
	if patch.JobType != nil {
		cols["job_type"] = *patch.JobType
	}

	job, err := s.jobs.Update(ctx, jobID, cols)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, apperr.NotFound("job not found")
		}
		return nil, apperr.Internal(err)
	}

	if patch.Latitude != nil && patch.Longitude != nil && patch.Address != nil {
		loc, err := s.upsertJobLocation(ctx, jobID, patch)
		if err != nil {
			s.log.Warn("job location upsert failed", "job_id", jobID, "err", err)
		} else {
			mergeLocation(job, loc)
		}
	}
	return job, nil
}

// upsertJobLocation implements the lookup-before-write upsert for the
// (job, jobID) location key. The unique index on the pair backs this up
// when two requests race past the lookup.
func (s *CompanyService) upsertJobLocation(ctx context.Context, jobID string, patch JobPatch) (*model.Location, error) {
	existing, err := s.locations.GetByEntity(ctx, model.EntityKindJob, jobID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		in := LocationInput{
			EntityType: model.EntityKindJob,
			EntityID:   jobID,
			Latitude:   patch.Latitude,
			Longitude:  patch.Longitude,
			Address:    *patch.Address,
		}
		if patch.PostalCode != nil {
			in.PostalCode = *patch.PostalCode
		}
		return s.locations.Create(ctx, in)
	}
	return s.locations.Update(ctx, existing.ID, LocationPatch{
		Latitude:   patch.Latitude,
		Longitude:  patch.Longitude,
		Address:    patch.Address,
		PostalCode: patch.PostalCode,
	})
}

// DeleteJob removes the job row, then best-effort deletes any location
// keyed by (job, id) and publishes job.deleted. Failure of either side
// effect is logged and does not affect the result.
func (s *CompanyService) DeleteJob(ctx context.Context, jobID string) (*model.Job, error) {
	if jobID == "" {
		return nil, apperr.BadRequest(`"jobId" is required`)
	}
	job, err := s.jobs.Delete(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, apperr.NotFound("job not found")
		}
		return nil, apperr.Internal(err)
	}
	if _, err := s.locations.DeleteByEntity(ctx, model.EntityKindJob, jobID); err != nil {
		s.log.Warn("job location delete failed", "job_id", jobID, "err", err)
	}
	s.publish(ctx, queue.JobDeletedQueue, queue.JobDeletedEvent{
		JobID:     job.ID,
		CompanyID: job.CompanyID,
		DeletedAt: time.Now().UTC().Format(time.RFC3339),
	})
	return job, nil
}

// UpdateApplicationStatus validates and persists a status change on one
// application. Status must belong to the enum; there is no transition
// restriction between enum values.
func (s *CompanyService) UpdateApplicationStatus(ctx context.Context, applicationID string, patch ApplicationStatusPatch) (*model.Application, error) {
	if applicationID == "" {
		return nil, apperr.BadRequest(`"id" of the application is required`)
	}
	if patch.Status == nil {
		return nil, apperr.BadRequest(`"status" is required`)
	}
	if !model.ValidStatus(*patch.Status) {
		return nil, apperr.BadRequest("invalid status: must be one of pending, accepted, rejected")
	}
	a, err := s.applications.UpdateStatus(ctx, applicationID, *patch.Status)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return nil, apperr.NotFound("application not found")
		}
		return nil, apperr.Internal(err)
	}
	s.publish(ctx, queue.ApplicationStatusQueue, queue.ApplicationStatusChangedEvent{
		ApplicationID: a.ID,
		JobID:         a.JobID,
		UserID:        a.UserID,
		Status:        a.Status,
		ChangedAt:     time.Now().UTC().Format(time.RFC3339),
	})
	return a, nil
}

// publish sends one event and logs any failure. Broker problems never
// propagate to the caller.
func (s *CompanyService) publish(ctx context.Context, queueName string, event any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, queueName, event); err != nil {
		s.log.Warn("event publish failed", "queue", queueName, "err", err)
	}
}

// mergeLocation copies location fields onto a job for enriched reads.
func mergeLocation(job *model.Job, loc *model.Location) {
	lat, lng := loc.Latitude, loc.Longitude
	job.Latitude = &lat
	job.Longitude = &lng
	if loc.Address != "" {
		addr := loc.Address
		job.Address = &addr
	}
	if loc.PostalCode != "" {
		cp := loc.PostalCode
		job.PostalCode = &cp
	}
}
