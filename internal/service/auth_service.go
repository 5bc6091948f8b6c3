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

// AuthStore is the persistence surface AuthService needs.
type AuthStore interface {
	Create(ctx context.Context, u *model.User) error
	CredentialsByEmail(ctx context.Context, email string) (id, hash string, err error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// RegisterInput carries the registration fields.
type RegisterInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

// AuthResult bundles the persisted user with the issued access token.
type AuthResult struct {
	User   *model.User
	Access utils.AccessToken
}

// AuthService issues stateless access tokens. There is no session
// store and no revocation list: a token stays valid until it expires.
type AuthService struct {
	users        AuthStore
	jwtSecret    string
	accessTTLMin int
	bcryptCost   int
}

// NewAuthService constructs an AuthService with the signing secret and
// token/bcrypt parameters from config.
func NewAuthService(users AuthStore, jwtSecret string, accessTTLMin, bcryptCost int) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret, accessTTLMin: accessTTLMin, bcryptCost: bcryptCost}
}

// Register creates a user and returns it with a fresh access token. A
// duplicate email is a Conflict.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if in.FirstName == "" {
		return nil, apperr.BadRequest(`"first_name" is required`)
	}
	if in.LastName == "" {
		return nil, apperr.BadRequest(`"last_name" is required`)
	}
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" {
		return nil, apperr.BadRequest(`"email" is required`)
	}
	if in.Password == "" {
		return nil, apperr.BadRequest(`"password" is required`)
	}

	hash, err := utils.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	u := &model.User{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Address:      in.Address,
		Phone:        in.Phone,
		Role:         in.Role,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, apperr.Conflict("a user with this email already exists")
		}
		return nil, apperr.Internal(err)
	}

	access, err := utils.NewAccessToken(s.jwtSecret, u.ID, u.Email, s.accessTTLMin)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &AuthResult{User: u, Access: access}, nil
}

// Login verifies the password and returns the user with a fresh access
// token. An unknown email and a wrong password produce the same
// Unauthenticated answer.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperr.BadRequest("email and password are required")
	}
	id, hash, err := s.users.CredentialsByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.Unauthenticated("invalid credentials")
		}
		return nil, apperr.Internal(err)
	}
	if !utils.VerifyPassword(hash, password) {
		return nil, apperr.Unauthenticated("invalid credentials")
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	access, err := utils.NewAccessToken(s.jwtSecret, u.ID, u.Email, s.accessTTLMin)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &AuthResult{User: u, Access: access}, nil
}
