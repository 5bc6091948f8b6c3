package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/job-board-api/internal/model"
)

// userColumns is the SELECT list shared by every user read. The
// password hash is fetched separately only where it is needed.
const userColumns = "id, first_name, last_name, email, address, phone, role, description, created_at, is_verified"

// userPatchOrder fixes the order in which patch columns are rendered
// into an UPDATE statement.
var userPatchOrder = []string{
	"first_name", "last_name", "email", "address", "phone", "password_hash", "description",
}

// UserRepo encapsulates all database queries against the users table.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the provided DB handle.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a new user row. The caller supplies the id and the
// already-hashed password. A duplicate email maps to ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `INSERT INTO users
		(id, first_name, last_name, email, address, phone, role, password_hash, description, created_at, is_verified)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		u.ID, u.FirstName, u.LastName, u.Email, u.Address, u.Phone,
		u.Role, u.PasswordHash, u.Description, u.CreatedAt, u.IsVerified)
	if isDuplicate(err) {
		return ErrEmailExists
	}
	return err
}

// List returns all users ordered by creation time, newest first.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	const q = "SELECT " + userColumns + " FROM users ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// GetByID fetches a user by id. Returns ErrUserNotFound when absent.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	const q = "SELECT " + userColumns + " FROM users WHERE id = ? LIMIT 1"
	u, err := scanUser(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmail fetches a user by normalized email. Returns ErrUserNotFound
// when absent.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	const q = "SELECT " + userColumns + " FROM users WHERE email = ? LIMIT 1"
	u, err := scanUser(r.db.QueryRowContext(ctx, q, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// CredentialsByEmail returns the id and password hash for a login
// check, leaving the profile columns out of the hot path.
func (r *UserRepo) CredentialsByEmail(ctx context.Context, email string) (id, hash string, err error) {
	email = strings.ToLower(strings.TrimSpace(email))
	const q = "SELECT id, password_hash FROM users WHERE email = ? LIMIT 1"
	err = r.db.QueryRowContext(ctx, q, email).Scan(&id, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", ErrUserNotFound
	}
	return id, hash, err
}

// Update applies the given column→value patch to one user and returns
// the refreshed record. MySQL has no RETURNING, so a follow-up SELECT
// re-reads the row. An empty patch is the caller's bug and reported as
// such; a missing row maps to ErrUserNotFound.
func (r *UserRepo) Update(ctx context.Context, id string, cols map[string]any) (*model.User, error) {
	set, args := buildSet(cols, userPatchOrder)
	if set == "" {
		return nil, errors.New("repository: empty user patch")
	}
	args = append(args, id)
	res, err := r.db.ExecContext(ctx, "UPDATE users SET "+set+" WHERE id = ?", args...)
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	// RowsAffected is 0 both for a missing row and for a no-op update,
	// so existence is settled by the re-read below.
	_ = res
	return r.GetByID(ctx, id)
}

// Delete removes a user row and returns its identifying fields. The
// row is read first because MySQL cannot return deleted columns.
func (r *UserRepo) Delete(ctx context.Context, id string) (*model.DeletedUser, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id); err != nil {
		return nil, err
	}
	return &model.DeletedUser{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}, nil
}

// scanUser reads one user row from either a *sql.Row or *sql.Rows.
// Nullable text columns come back through sql.NullString so rows written
// before a column existed still scan cleanly.
func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	var address, phone, role, description sql.NullString
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email,
		&address, &phone, &role, &description, &u.CreatedAt, &u.IsVerified)
	if err != nil {
		return model.User{}, err
	}
	u.Address = address.String
	u.Phone = phone.String
	u.Role = role.String
	u.Description = description.String
	return u, nil
}
