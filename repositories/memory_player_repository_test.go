package repositories

import (
	"context"
	"testing"

	"github.com/Dosada05/scouting-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrOf[T any](v T) *T {
	return &v
}

func newPlayerRepos() (*MemoryPlayerRepository, *MemoryPlayerMetricsRepository) {
	metrics := NewMemoryPlayerMetricsRepository()
	return NewMemoryPlayerRepository(metrics), metrics
}

func TestMemoryPlayerRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo, _ := newPlayerRepos()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		player := &models.Player{Name: "Player"}
		require.NoError(t, repo.Create(ctx, player))
		assert.Equal(t, i, player.ID)
		assert.False(t, player.CreatedAt.IsZero())
	}
}

func TestMemoryPlayerRepository_CountersAreIndependentPerCollection(t *testing.T) {
	repo, metrics := newPlayerRepos()
	videos := NewMemoryVideoRepository()
	ctx := context.Background()

	player := &models.Player{Name: "One"}
	require.NoError(t, repo.Create(ctx, player))

	video := &models.Video{Title: "clip", FileName: "clip.mp4", Status: models.VideoStatusPending}
	require.NoError(t, videos.Create(ctx, video))

	m := &models.PlayerMetrics{PlayerID: player.ID}
	require.NoError(t, metrics.Create(ctx, m))

	// Each collection starts its own counter at 1.
	assert.Equal(t, 1, player.ID)
	assert.Equal(t, 1, video.ID)
	assert.Equal(t, 1, m.ID)
}

func TestMemoryPlayerRepository_GetByIDReturnsCopy(t *testing.T) {
	repo, _ := newPlayerRepos()
	ctx := context.Background()

	player := &models.Player{Name: "Original", Team: ptrOf("Team A")}
	require.NoError(t, repo.Create(ctx, player))

	got, err := repo.GetByID(ctx, player.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Team)

	// Mutating the returned value must not leak into the store.
	got.Name = "Changed"
	*got.Team = "Team B"

	again, err := repo.GetByID(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Name)
	assert.Equal(t, "Team A", *again.Team)
}

func TestMemoryPlayerRepository_GetByIDNotFound(t *testing.T) {
	repo, _ := newPlayerRepos()

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestMemoryPlayerRepository_UpdateMergesAndClears(t *testing.T) {
	repo, _ := newPlayerRepos()
	ctx := context.Background()

	player := &models.Player{
		Name:             "Striker",
		Age:              ptrOf(22),
		Team:             ptrOf("Old Club"),
		RecruitmentMatch: ptrOf(80),
	}
	require.NoError(t, repo.Create(ctx, player))
	createdAt := player.CreatedAt

	patch := models.PlayerPatch{
		Team:             models.Some("New Club"),
		RecruitmentMatch: models.Null[int](),
	}
	updated, err := repo.Update(ctx, player.ID, patch)
	require.NoError(t, err)

	assert.Equal(t, "Striker", updated.Name)
	require.NotNil(t, updated.Age)
	assert.Equal(t, 22, *updated.Age)
	require.NotNil(t, updated.Team)
	assert.Equal(t, "New Club", *updated.Team)
	assert.Nil(t, updated.RecruitmentMatch, "explicit null must clear the field")
	assert.Equal(t, player.ID, updated.ID)
	assert.Equal(t, createdAt, updated.CreatedAt)
}

func TestMemoryPlayerRepository_UpdateNotFound(t *testing.T) {
	repo, _ := newPlayerRepos()

	_, err := repo.Update(context.Background(), 7, models.PlayerPatch{})
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestMemoryPlayerRepository_GetTopOrdering(t *testing.T) {
	repo, metrics := newPlayerRepos()
	ctx := context.Background()

	scores := []int{99, 96, 95, 97}
	for _, score := range scores {
		player := &models.Player{Name: "P", RecruitmentMatch: ptrOf(score)}
		require.NoError(t, repo.Create(ctx, player))
	}
	require.NoError(t, metrics.Create(ctx, &models.PlayerMetrics{PlayerID: 1, Pace: ptrOf(90.0)}))

	top, err := repo.GetTop(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, 1, top[0].ID)
	assert.Equal(t, 4, top[1].ID)
	require.NotNil(t, top[0].Metrics)
	assert.Nil(t, top[1].Metrics, "players without metrics join as null")
}

func TestMemoryPlayerRepository_GetTopTreatsNilScoreAsZero(t *testing.T) {
	repo, _ := newPlayerRepos()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Player{Name: "Unrated"}))
	require.NoError(t, repo.Create(ctx, &models.Player{Name: "Rated", RecruitmentMatch: ptrOf(10)}))

	top, err := repo.GetTop(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 2, top[0].ID)
	assert.Equal(t, 1, top[1].ID)
}

func TestMemoryPlayerMetricsRepository_OnePerPlayer(t *testing.T) {
	metrics := NewMemoryPlayerMetricsRepository()
	ctx := context.Background()

	require.NoError(t, metrics.Create(ctx, &models.PlayerMetrics{PlayerID: 1}))

	err := metrics.Create(ctx, &models.PlayerMetrics{PlayerID: 1})
	assert.ErrorIs(t, err, ErrPlayerMetricsConflict)

	require.NoError(t, metrics.Create(ctx, &models.PlayerMetrics{PlayerID: 2}))
}

func TestMemoryPlayerMetricsRepository_UpdateMergesAndClears(t *testing.T) {
	metrics := NewMemoryPlayerMetricsRepository()
	ctx := context.Background()

	m := &models.PlayerMetrics{PlayerID: 1, Pace: ptrOf(80.0), Vision: ptrOf(70.0)}
	require.NoError(t, metrics.Create(ctx, m))

	patch := models.PlayerMetricsPatch{
		Pace:   models.Some(85.0),
		Vision: models.Null[float64](),
	}
	updated, err := metrics.Update(ctx, m.ID, patch)
	require.NoError(t, err)

	require.NotNil(t, updated.Pace)
	assert.Equal(t, 85.0, *updated.Pace)
	assert.Nil(t, updated.Vision)
	assert.Equal(t, 1, updated.PlayerID)
}

func TestMemoryPlayerMetricsRepository_GetByPlayerIDNotFound(t *testing.T) {
	metrics := NewMemoryPlayerMetricsRepository()

	_, err := metrics.GetByPlayerID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrPlayerMetricsNotFound)
}
