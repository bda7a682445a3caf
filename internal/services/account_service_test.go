package services

import (
	"context"
	"testing"

	"github.com/LJMarquez/talentlink-backend/internal/services/dto"
	"github.com/LJMarquez/talentlink-backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAccount_SignUpHashesPassword(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	svc := NewAccountService(accountRepo)

	user, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		FirstName: "Dana",
		Email:     "dana@example.com",
		Password:  "hunter2",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)

	stored := accountRepo.users[user.ID]
	assert.NotEqual(t, "hunter2", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2")))

	// Embedded arrays start out present and empty, not null.
	assert.NotNil(t, user.AppliedJobs)
	assert.NotNil(t, user.PublishedJobs)
	assert.NotNil(t, user.PendingJobs)
	assert.NotNil(t, user.Notifications)
}

func TestAccount_SignUpDuplicateEmailIsCaseInsensitive(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())
	ctx := context.Background()

	_, err := svc.SignUp(ctx, &dto.SignUpRequest{Email: "dana@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, &dto.SignUpRequest{Email: "Dana@Example.COM", Password: "pw"})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode)
	assert.Equal(t, "User with the same email already exists", appErr.Message)
}

func TestAccount_LogIn(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())
	ctx := context.Background()

	user, err := svc.SignUp(ctx, &dto.SignUpRequest{Email: "dana@example.com", Password: "hunter2"})
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		id, err := svc.LogIn(ctx, "dana@example.com", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, user.ID, id)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.LogIn(ctx, "dana@example.com", "wrong")
		assert.Error(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.LogIn(ctx, "nobody@example.com", "hunter2")
		assert.Error(t, err)
	})
}

func TestAccount_GetUserNotFound(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())

	_, err := svc.GetUser(context.Background(), "missing")
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
	assert.Equal(t, "User with ID missing not found", appErr.Message)
}

func TestAccount_DeleteUser(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	svc := NewAccountService(accountRepo)
	ctx := context.Background()

	user, err := svc.SignUp(ctx, &dto.SignUpRequest{Email: "dana@example.com", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, user.ID))

	err = svc.DeleteUser(ctx, user.ID)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}
