package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/job-board-api/internal/apperr"
	"github.com/iliyamo/job-board-api/internal/model"
	"github.com/iliyamo/job-board-api/internal/utils"
)

const testBcryptCost = 4 // bcrypt.MinCost, keeps the suite fast

func seedUser(store *memUserStore, id, email string) {
	store.add(model.User{
		ID:        id,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		CreatedAt: time.Now().UTC(),
	})
}

func TestUserUpdateAppliesAllowListedFields(t *testing.T) {
	store := newMemUserStore()
	seedUser(store, "u1", "ada@example.test")
	svc := NewUserService(store, newMemApplicationStore(), testBcryptCost)

	u, err := svc.Update(context.Background(), "u1", UserPatch{
		FirstName: str("Augusta"),
		Phone:     str("+44 20 0000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Augusta", u.FirstName)
	assert.Equal(t, "+44 20 0000", u.Phone)
	assert.Equal(t, "Lovelace", u.LastName)
}

func TestUserUpdateEmptyPatchIsNoop(t *testing.T) {
	store := newMemUserStore()
	seedUser(store, "u1", "ada@example.test")
	// Force a failure if the service reaches the store's Update at all.
	store.updErr = errors.New("update should not have been called")
	svc := NewUserService(store, newMemApplicationStore(), testBcryptCost)

	u, err := svc.Update(context.Background(), "u1", UserPatch{})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.test", u.Email)
}

func TestUserUpdatePasswordIsHashed(t *testing.T) {
	store := newMemUserStore()
	seedUser(store, "u1", "ada@example.test")
	svc := NewUserService(store, newMemApplicationStore(), testBcryptCost)

	_, err := svc.Update(context.Background(), "u1", UserPatch{Password: str("hunter2")})
	require.NoError(t, err)

	stored := store.byID["u1"]
	assert.NotEqual(t, "hunter2", stored.PasswordHash)
	assert.True(t, utils.VerifyPassword(stored.PasswordHash, "hunter2"))
}

func TestUserUpdateEmailConflict(t *testing.T) {
	store := newMemUserStore()
	seedUser(store, "u1", "ada@example.test")
	seedUser(store, "u2", "grace@example.test")
	svc := NewUserService(store, newMemApplicationStore(), testBcryptCost)

	_, err := svc.Update(context.Background(), "u1", UserPatch{Email: str("grace@example.test")})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.EqualError(t, err, "a user with this email already exists")
}

func TestUserUpdateOwnEmailPassesThrough(t *testing.T) {
	store := newMemUserStore()
	seedUser(store, "u1", "ada@example.test")
	svc := NewUserService(store, newMemApplicationStore(), testBcryptCost)

	// Same address, different case and padding: normalized to the
	// current value, so no conflict.
	u, err := svc.Update(context.Background(), "u1", UserPatch{Email: str("  Ada@Example.Test ")})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.test", u.Email)
}

func TestUserUpdateUnknownIDNotFound(t *testing.T) {
	svc := NewUserService(newMemUserStore(), newMemApplicationStore(), testBcryptCost)

	_, err := svc.Update(context.Background(), "ghost", UserPatch{FirstName: str("x")})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUserDeleteReturnsIdentifyingFields(t *testing.T) {
	store := newMemUserStore()
	seedUser(store, "u1", "ada@example.test")
	svc := NewUserService(store, newMemApplicationStore(), testBcryptCost)

	d, err := svc.Delete(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", d.ID)
	assert.Equal(t, "ada@example.test", d.Email)

	_, err = svc.Delete(context.Background(), "u1")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreateApplicationDefaults(t *testing.T) {
	apps := newMemApplicationStore()
	svc := NewUserService(newMemUserStore(), apps, testBcryptCost)

	a, err := svc.CreateApplication(context.Background(), "u1", ApplicationInput{
		JobID:       "j1",
		CoverLetter: "I would like this job.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, model.StatusPending, a.Status)
	assert.Equal(t, "u1", a.UserID)
	assert.WithinDuration(t, time.Now().UTC(), a.AppliedAt, time.Minute)
	assert.Contains(t, apps.byID, a.ID)
}

func TestCreateApplicationRequiresJobID(t *testing.T) {
	svc := NewUserService(newMemUserStore(), newMemApplicationStore(), testBcryptCost)

	_, err := svc.CreateApplication(context.Background(), "u1", ApplicationInput{})
	require.EqualError(t, err, `"job_id" is required`)
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}

func TestUserListEmpty(t *testing.T) {
	svc := NewUserService(newMemUserStore(), newMemApplicationStore(), testBcryptCost)

	out, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
