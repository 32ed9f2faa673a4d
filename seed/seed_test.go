package seed

import (
	"context"
	"testing"

	"github.com/Dosada05/scouting-system/repositories"
	"github.com/Dosada05/scouting-system/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type demoServices struct {
	users    services.UserService
	players  services.PlayerService
	videos   services.VideoService
	f1       services.F1Service
	football services.FootballService
}

func seedDemo(t *testing.T) demoServices {
	t.Helper()

	repos := repositories.NewMemoryRepositories()
	svcs := demoServices{
		users:    services.NewUserService(repos.Users),
		players:  services.NewPlayerService(repos.Players, repos.PlayerMetrics, nil),
		videos:   services.NewVideoService(repos.Videos, nil),
		f1:       services.NewF1Service(repos.F1Drivers, repos.F1Races, repos.F1Predictions, nil),
		football: services.NewFootballService(repos.FootballTeams, repos.FootballMatches, repos.FootballPredictions, repos.FootballTeamStats, nil),
	}

	require.NoError(t, Demo(context.Background(), svcs.users, svcs.players, svcs.videos, svcs.f1, svcs.football))
	return svcs
}

func TestDemoSeedsTopPlayersByRecruitmentMatch(t *testing.T) {
	svcs := seedDemo(t)
	ctx := context.Background()

	players, err := svcs.players.GetAllPlayers(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 8)

	top, err := svcs.players.GetTopPlayers(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "Lionel Messi", top[0].Name)
	assert.Equal(t, "Cristiano Ronaldo", top[1].Name)
	assert.Equal(t, "Kylian Mbappé", top[2].Name)
	require.NotNil(t, top[0].Metrics, "seeded stars carry metrics")
}

func TestDemoSeedsUpcomingRacesInDateOrder(t *testing.T) {
	svcs := seedDemo(t)

	races, err := svcs.f1.GetUpcomingRaces(context.Background())
	require.NoError(t, err)
	require.Len(t, races, 4)
	assert.Equal(t, "Australian Grand Prix", races[0].Name)
	assert.Equal(t, "Saudi Arabian Grand Prix", races[1].Name)
	assert.Equal(t, "Monaco Grand Prix", races[2].Name)
	assert.Equal(t, "Spanish Grand Prix", races[3].Name)
}

func TestDemoSeedsMonacoPredictionsJoinedWithDrivers(t *testing.T) {
	svcs := seedDemo(t)
	ctx := context.Background()

	races, err := svcs.f1.GetUpcomingRaces(ctx)
	require.NoError(t, err)

	var monacoID int
	for _, race := range races {
		if race.Name == "Monaco Grand Prix" {
			monacoID = race.ID
		}
	}
	require.NotZero(t, monacoID)

	predictions, err := svcs.f1.GetRacePredictions(ctx, monacoID)
	require.NoError(t, err)
	require.Len(t, predictions, 3)
	assert.Equal(t, "Max Verstappen", predictions[0].Driver.Name)
	assert.Equal(t, "Lewis Hamilton", predictions[1].Driver.Name)
	assert.Equal(t, "Charles Leclerc", predictions[2].Driver.Name)
	require.NotNil(t, predictions[0].WinProbability)
	assert.Equal(t, 68.0, *predictions[0].WinProbability)
}

func TestDemoSeedsSaudiLeagueTable(t *testing.T) {
	svcs := seedDemo(t)

	stats, err := svcs.football.GetTeamStats(context.Background(), "Roshn Saudi League")
	require.NoError(t, err)
	require.Len(t, stats, 4)
	for i, stat := range stats {
		require.NotNil(t, stat.LeaguePosition)
		assert.Equal(t, i+1, *stat.LeaguePosition)
	}
}

func TestDemoSeedsDemoUser(t *testing.T) {
	svcs := seedDemo(t)

	user, err := svcs.users.GetUserByUsername(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, "Head Scout", user.Role)
}

func TestDemoIsNotIdempotent(t *testing.T) {
	svcs := seedDemo(t)

	err := Demo(context.Background(), svcs.users, svcs.players, svcs.videos, svcs.f1, svcs.football)
	assert.Error(t, err, "re-seeding trips the unique demo username")
}
