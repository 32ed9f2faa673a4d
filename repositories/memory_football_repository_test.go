package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/Dosada05/scouting-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFootballMatchRepository_ListUpcomingOrdersByDate(t *testing.T) {
	repo := NewMemoryFootballMatchRepository()
	ctx := context.Background()

	april := time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC)
	march := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &models.FootballMatch{HomeTeamID: 1, AwayTeamID: 2, Date: &april, Status: models.MatchStatusUpcoming}))
	require.NoError(t, repo.Create(ctx, &models.FootballMatch{HomeTeamID: 3, AwayTeamID: 4, Date: &march, Status: models.MatchStatusUpcoming}))
	require.NoError(t, repo.Create(ctx, &models.FootballMatch{HomeTeamID: 1, AwayTeamID: 3, Status: models.MatchStatusUpcoming}))
	require.NoError(t, repo.Create(ctx, &models.FootballMatch{HomeTeamID: 2, AwayTeamID: 4, Date: &march, Status: models.MatchStatusCompleted}))

	matches, err := repo.ListUpcoming(ctx)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, 2, matches[0].ID)
	assert.Equal(t, 1, matches[1].ID)
	assert.Equal(t, 3, matches[2].ID, "matches without a date sort last")
}

func TestMemoryFootballPredictionRepository_OnePerMatch(t *testing.T) {
	repo := NewMemoryFootballPredictionRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.FootballPrediction{MatchID: 1}))

	err := repo.Create(ctx, &models.FootballPrediction{MatchID: 1})
	assert.ErrorIs(t, err, ErrFootballPredictionConflict)

	require.NoError(t, repo.Create(ctx, &models.FootballPrediction{MatchID: 2}))

	prediction, err := repo.GetByMatchID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, prediction.ID)

	_, err = repo.GetByMatchID(ctx, 9)
	assert.ErrorIs(t, err, ErrFootballPredictionNotFound)
}

func TestMemoryFootballTeamStatRepository_OnePerTeam(t *testing.T) {
	teams := NewMemoryFootballTeamRepository()
	repo := NewMemoryFootballTeamStatRepository(teams)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.FootballTeamStat{TeamID: 1}))

	err := repo.Create(ctx, &models.FootballTeamStat{TeamID: 1})
	assert.ErrorIs(t, err, ErrFootballTeamStatConflict)
}

func TestMemoryFootballTeamStatRepository_ListFiltersByLeague(t *testing.T) {
	teams := NewMemoryFootballTeamRepository()
	repo := NewMemoryFootballTeamStatRepository(teams)
	ctx := context.Background()

	saudi := "Roshn Saudi League"
	premier := "Premier League"

	alHilal := &models.FootballTeam{Name: "Al Hilal", League: &saudi}
	manCity := &models.FootballTeam{Name: "Manchester City", League: &premier}
	alNassr := &models.FootballTeam{Name: "Al Nassr", League: &saudi}
	require.NoError(t, teams.Create(ctx, alHilal))
	require.NoError(t, teams.Create(ctx, manCity))
	require.NoError(t, teams.Create(ctx, alNassr))

	require.NoError(t, repo.Create(ctx, &models.FootballTeamStat{TeamID: alNassr.ID, LeaguePosition: ptrOf(2)}))
	require.NoError(t, repo.Create(ctx, &models.FootballTeamStat{TeamID: alHilal.ID, LeaguePosition: ptrOf(1)}))
	require.NoError(t, repo.Create(ctx, &models.FootballTeamStat{TeamID: manCity.ID, LeaguePosition: ptrOf(1)}))

	stats, err := repo.List(ctx, saudi)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, alHilal.ID, stats[0].TeamID)
	assert.Equal(t, alNassr.ID, stats[1].TeamID)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
