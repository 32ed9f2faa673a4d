package services

import (
	"context"
	"testing"
	"time"

	"github.com/Dosada05/scouting-system/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetSummary(t *testing.T) {
	repos := repositories.NewMemoryRepositories()

	players := NewPlayerService(repos.Players, repos.PlayerMetrics, nil)
	videos := NewVideoService(repos.Videos, nil)
	f1 := NewF1Service(repos.F1Drivers, repos.F1Races, repos.F1Predictions, nil)
	football := NewFootballService(repos.FootballTeams, repos.FootballMatches, repos.FootballPredictions, repos.FootballTeamStats, nil)

	ctx := context.Background()

	for _, name := range []string{"Striker One", "Striker Two", "Striker Three", "Striker Four", "Striker Five", "Striker Six"} {
		_, err := players.CreatePlayer(ctx, CreatePlayerInput{Name: name})
		require.NoError(t, err)
	}

	_, err := videos.CreateVideo(ctx, CreateVideoInput{Title: "Highlights", FileName: "highlights.mp4"})
	require.NoError(t, err)

	date := time.Date(2025, time.May, 24, 0, 0, 0, 0, time.UTC)
	_, err = f1.CreateRace(ctx, CreateF1RaceInput{Name: "Monaco Grand Prix", Date: &date})
	require.NoError(t, err)

	_, err = football.CreateMatch(ctx, CreateFootballMatchInput{HomeTeamID: 1, AwayTeamID: 2, Date: &date})
	require.NoError(t, err)

	svc := NewDashboardService(players, videos, f1, football)

	summary, err := svc.GetSummary(ctx)
	require.NoError(t, err)

	assert.Len(t, summary.TopPlayers, 5, "top players are capped at five")
	assert.Len(t, summary.RecentVideos, 1)
	assert.Len(t, summary.UpcomingRaces, 1)
	assert.Len(t, summary.UpcomingMatches, 1)
}

func TestDashboardService_GetSummaryEmptyStore(t *testing.T) {
	repos := repositories.NewMemoryRepositories()

	svc := NewDashboardService(
		NewPlayerService(repos.Players, repos.PlayerMetrics, nil),
		NewVideoService(repos.Videos, nil),
		NewF1Service(repos.F1Drivers, repos.F1Races, repos.F1Predictions, nil),
		NewFootballService(repos.FootballTeams, repos.FootballMatches, repos.FootballPredictions, repos.FootballTeamStats, nil),
	)

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Empty(t, summary.TopPlayers)
	assert.NotNil(t, summary.TopPlayers, "empty sections marshal as [] rather than null")
	assert.Empty(t, summary.RecentVideos)
	assert.Empty(t, summary.UpcomingRaces)
	assert.Empty(t, summary.UpcomingMatches)
}
