package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/job-board-api/internal/apperr"
	"github.com/iliyamo/job-board-api/internal/model"
	"github.com/iliyamo/job-board-api/internal/repository"
	"github.com/iliyamo/job-board-api/internal/utils"
)

// UserStore is the persistence surface UserService needs.
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, id string, cols map[string]any) (*model.User, error)
	Delete(ctx context.Context, id string) (*model.DeletedUser, error)
}

// ApplicationStore is the persistence surface for application writes.
type ApplicationStore interface {
	Create(ctx context.Context, a *model.Application) error
	UpdateStatus(ctx context.Context, id, status string) (*model.Application, error)
}

// UserPatch carries the fields a user may change on their own profile.
// Binding a JSON body onto this struct silently drops every key outside
// the allow-list; the projection below never looks at anything else.
type UserPatch struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Password    *string `json:"password"`
	Description *string `json:"description"`
}

// ApplicationInput carries the fields accepted when a user applies to a
// job. Status is not accepted: every application starts as pending.
type ApplicationInput struct {
	JobID       string `json:"job_id"`
	CoverLetter string `json:"cover_letter"`
	Resume      string `json:"resume"`
}

// UserService implements profile CRUD and application creation.
type UserService struct {
	users        UserStore
	applications ApplicationStore
	bcryptCost   int
}

// NewUserService constructs a UserService.
func NewUserService(users UserStore, applications ApplicationStore, bcryptCost int) *UserService {
	return &UserService{users: users, applications: applications, bcryptCost: bcryptCost}
}

// List returns all users, newest first.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	out, err := s.users.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if out == nil {
		out = []model.User{}
	}
	return out, nil
}

// Get returns one user by id.
func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, apperr.BadRequest(`"id" is required`)
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal(err)
	}
	return u, nil
}

// Update applies an allow-listed patch to a user profile. A password in
// the patch is replaced by its bcrypt hash before persisting; the
// plaintext is never written. Changing the email to one owned by
// another user is a Conflict, while re-submitting one's own current
// email passes through as a no-op. The refreshed record is returned.
func (s *UserService) Update(ctx context.Context, id string, patch UserPatch) (*model.User, error) {
	if id == "" {
		return nil, apperr.BadRequest(`"id" is required`)
	}
	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal(err)
	}

	cols := map[string]any{}
	if patch.FirstName != nil {
		cols["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		cols["last_name"] = *patch.LastName
	}
	if patch.Email != nil {
		cols["email"] = strings.ToLower(strings.TrimSpace(*patch.Email))
	}
	if patch.Address != nil {
		cols["address"] = *patch.Address
	}
	if patch.Phone != nil {
		cols["phone"] = *patch.Phone
	}
	if patch.Password != nil {
		hash, err := utils.HashPassword(*patch.Password, s.bcryptCost)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		cols["password_hash"] = hash
	}
	if patch.Description != nil {
		cols["description"] = *patch.Description
	}

	// Email uniqueness is checked up front so the caller gets a clean
	// Conflict instead of a driver error. The unique index still backs
	// this up against races.
	if email, ok := cols["email"].(string); ok && email != existing.Email {
		other, err := s.users.GetByEmail(ctx, email)
		switch {
		case err == nil && other.ID != id:
			return nil, apperr.Conflict("a user with this email already exists")
		case err != nil && !errors.Is(err, repository.ErrUserNotFound):
			return nil, apperr.Internal(err)
		}
	}

	if len(cols) == 0 {
		// Every submitted field was outside the allow-list; nothing to
		// persist and nothing to report.
		return existing, nil
	}

	u, err := s.users.Update(ctx, id, cols)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, apperr.NotFound("user not found")
		case errors.Is(err, repository.ErrEmailExists):
			return nil, apperr.Conflict("a user with this email already exists")
		}
		return nil, apperr.Internal(err)
	}
	return u, nil
}

// Delete removes a user and returns the identifying fields of the
// deleted record.
func (s *UserService) Delete(ctx context.Context, id string) (*model.DeletedUser, error) {
	if id == "" {
		return nil, apperr.BadRequest(`"id" is required`)
	}
	d, err := s.users.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal(err)
	}
	return d, nil
}

// CreateApplication inserts a new application for the given applicant
// with status pending and the current timestamp. There is deliberately
// no check that the job exists or that the applicant has not already
// applied; both are accepted gaps of the current data model.
func (s *UserService) CreateApplication(ctx context.Context, applicantID string, in ApplicationInput) (*model.Application, error) {
	if applicantID == "" {
		return nil, apperr.BadRequest(`"user_id" is required`)
	}
	if in.JobID == "" {
		return nil, apperr.BadRequest(`"job_id" is required`)
	}
	a := &model.Application{
		ID:          uuid.NewString(),
		JobID:       in.JobID,
		UserID:      applicantID,
		Status:      model.StatusPending,
		AppliedAt:   time.Now().UTC(),
		CoverLetter: in.CoverLetter,
		Resume:      in.Resume,
	}
	if err := s.applications.Create(ctx, a); err != nil {
		return nil, apperr.Internal(err)
	}
	return a, nil
}
