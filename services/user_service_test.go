package services

import (
	"context"
	"testing"

	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/repositories"
	"github.com/Dosada05/scouting-system/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterHashesPasswordAndDefaultsRole(t *testing.T) {
	svc := NewUserService(repositories.NewMemoryUserRepository())
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterUserInput{Username: "demo", Password: "password"})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultUserRole, user.Role)
	assert.NotEqual(t, "password", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("password", user.PasswordHash))
}

func TestUserService_RegisterValidation(t *testing.T) {
	svc := NewUserService(repositories.NewMemoryUserRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterUserInput{Username: " ", Password: "password"})
	assert.ErrorIs(t, err, ErrUsernameRequired)

	_, err = svc.Register(ctx, RegisterUserInput{Username: "demo", Password: ""})
	assert.ErrorIs(t, err, ErrPasswordRequired)

	_, err = svc.Register(ctx, RegisterUserInput{Username: "demo", Password: "abc"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestUserService_RegisterUsernameConflict(t *testing.T) {
	svc := NewUserService(repositories.NewMemoryUserRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterUserInput{Username: "demo", Password: "password"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterUserInput{Username: "demo", Password: "password"})
	assert.ErrorIs(t, err, ErrUsernameConflict)
}

func TestUserService_GetUserByIDNotFound(t *testing.T) {
	svc := NewUserService(repositories.NewMemoryUserRepository())

	_, err := svc.GetUserByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
