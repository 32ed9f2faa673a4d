package services

import (
	"context"
	"testing"

	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrOf[T any](v T) *T {
	return &v
}

func newPlayerService() PlayerService {
	metrics := repositories.NewMemoryPlayerMetricsRepository()
	players := repositories.NewMemoryPlayerRepository(metrics)
	return NewPlayerService(players, metrics, nil)
}

func TestPlayerService_CreateRequiresName(t *testing.T) {
	svc := newPlayerService()

	_, err := svc.CreatePlayer(context.Background(), CreatePlayerInput{Name: "  "})
	assert.ErrorIs(t, err, ErrPlayerNameRequired)
}

func TestPlayerService_UpdateRejectsNullName(t *testing.T) {
	svc := newPlayerService()
	ctx := context.Background()

	player, err := svc.CreatePlayer(ctx, CreatePlayerInput{Name: "Striker"})
	require.NoError(t, err)

	_, err = svc.UpdatePlayer(ctx, player.ID, models.PlayerPatch{Name: models.Null[string]()})
	assert.ErrorIs(t, err, ErrPlayerNameRequired)

	// Absent name keeps the prior value.
	updated, err := svc.UpdatePlayer(ctx, player.ID, models.PlayerPatch{Age: models.Some(21)})
	require.NoError(t, err)
	assert.Equal(t, "Striker", updated.Name)
}

func TestPlayerService_GetPlayerByIDJoinsMetrics(t *testing.T) {
	svc := newPlayerService()
	ctx := context.Background()

	player, err := svc.CreatePlayer(ctx, CreatePlayerInput{Name: "Striker"})
	require.NoError(t, err)

	got, err := svc.GetPlayerByID(ctx, player.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Metrics)

	_, err = svc.CreateMetrics(ctx, CreatePlayerMetricsInput{PlayerID: player.ID, Pace: ptrOf(90.0)})
	require.NoError(t, err)

	got, err = svc.GetPlayerByID(ctx, player.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Metrics)
	assert.Equal(t, 90.0, *got.Metrics.Pace)
}

func TestPlayerService_CreateMetricsConflict(t *testing.T) {
	svc := newPlayerService()
	ctx := context.Background()

	player, err := svc.CreatePlayer(ctx, CreatePlayerInput{Name: "Striker"})
	require.NoError(t, err)

	_, err = svc.CreateMetrics(ctx, CreatePlayerMetricsInput{PlayerID: player.ID})
	require.NoError(t, err)

	_, err = svc.CreateMetrics(ctx, CreatePlayerMetricsInput{PlayerID: player.ID})
	assert.ErrorIs(t, err, ErrPlayerMetricsConflict)
}

func TestPlayerService_GetTopPlayersValidatesLimit(t *testing.T) {
	svc := newPlayerService()

	_, err := svc.GetTopPlayers(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestPlayerService_GetPlayerByIDNotFound(t *testing.T) {
	svc := newPlayerService()

	_, err := svc.GetPlayerByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}
