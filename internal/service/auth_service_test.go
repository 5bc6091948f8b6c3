package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/job-board-api/internal/apperr"
	"github.com/iliyamo/job-board-api/internal/utils"
)

const testSecret = "test-secret"

func newAuthFixture() (*memUserStore, *AuthService) {
	store := newMemUserStore()
	return store, NewAuthService(store, testSecret, 15, testBcryptCost)
}

func TestRegisterIssuesParsableToken(t *testing.T) {
	_, svc := newAuthFixture()

	res, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "Ada@Example.Test",
		Password:  "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.test", res.User.Email) // normalized
	assert.NotEqual(t, "hunter2", res.User.PasswordHash)

	claims, err := utils.ParseAccessToken(testSecret, res.Access.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, "ada@example.test", claims.Email)
}

func TestRegisterValidationOrder(t *testing.T) {
	_, svc := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{})
	require.EqualError(t, err, `"first_name" is required`)

	_, err = svc.Register(ctx, RegisterInput{FirstName: "Ada"})
	require.EqualError(t, err, `"last_name" is required`)

	_, err = svc.Register(ctx, RegisterInput{FirstName: "Ada", LastName: "Lovelace"})
	require.EqualError(t, err, `"email" is required`)

	_, err = svc.Register(ctx, RegisterInput{FirstName: "Ada", LastName: "Lovelace", Email: "a@b.test"})
	require.EqualError(t, err, `"password" is required`)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	_, svc := newAuthFixture()
	ctx := context.Background()

	in := RegisterInput{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.test", Password: "hunter2"}
	_, err := svc.Register(ctx, in)
	require.NoError(t, err)

	_, err = svc.Register(ctx, in)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestLoginRoundTrip(t *testing.T) {
	_, svc := newAuthFixture()
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.test", Password: "hunter2"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, "ADA@example.test", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, res.User.ID)
	assert.NotEmpty(t, res.Access.Token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	_, svc := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.test", Password: "hunter2"})
	require.NoError(t, err)

	// Unknown email and wrong password must yield the same answer so a
	// caller cannot probe which emails are registered.
	_, unknownErr := svc.Login(ctx, "nobody@example.test", "hunter2")
	_, wrongPassErr := svc.Login(ctx, "ada@example.test", "wrong")

	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(unknownErr))
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(wrongPassErr))
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
}
