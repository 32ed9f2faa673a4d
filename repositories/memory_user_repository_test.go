package repositories

import (
	"context"
	"testing"

	"github.com/Dosada05/scouting-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserRepository_UsernameIsUnique(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "demo", Role: models.DefaultUserRole}))

	err := repo.Create(ctx, &models.User{Username: "demo", Role: models.DefaultUserRole})
	assert.ErrorIs(t, err, ErrUserUsernameConflict)
}

func TestMemoryUserRepository_GetByUsername(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user := &models.User{Username: "scout1", Role: models.DefaultUserRole}
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByUsername(ctx, "scout1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.GetByUsername(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
