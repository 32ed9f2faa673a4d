package services

import (
	"context"
	"testing"

	"github.com/Dosada05/scouting-system/live"
	"github.com/Dosada05/scouting-system/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFootballService(broadcaster Broadcaster) FootballService {
	teams := repositories.NewMemoryFootballTeamRepository()
	matches := repositories.NewMemoryFootballMatchRepository()
	predictions := repositories.NewMemoryFootballPredictionRepository()
	stats := repositories.NewMemoryFootballTeamStatRepository(teams)
	return NewFootballService(teams, matches, predictions, stats, broadcaster)
}

func TestFootballService_CreateMatchRequiresBothTeams(t *testing.T) {
	svc := newFootballService(nil)
	ctx := context.Background()

	_, err := svc.CreateMatch(ctx, CreateFootballMatchInput{HomeTeamID: 1})
	assert.ErrorIs(t, err, ErrMatchTeamsRequired)

	_, err = svc.CreateMatch(ctx, CreateFootballMatchInput{AwayTeamID: 2})
	assert.ErrorIs(t, err, ErrMatchTeamsRequired)
}

func TestFootballService_CreatePredictionConflictAndBroadcast(t *testing.T) {
	broadcaster := &fakeBroadcaster{}
	svc := newFootballService(broadcaster)
	ctx := context.Background()

	prediction, err := svc.CreatePrediction(ctx, CreateFootballPredictionInput{MatchID: 4, Confidence: ptrOf(80)})
	require.NoError(t, err)

	require.Len(t, broadcaster.rooms, 1)
	assert.Equal(t, live.MatchRoom(4), broadcaster.rooms[0])
	assert.Equal(t, "FOOTBALL_PREDICTION_CREATED", broadcaster.messages[0].Type)
	assert.Same(t, prediction, broadcaster.messages[0].Payload)

	_, err = svc.CreatePrediction(ctx, CreateFootballPredictionInput{MatchID: 4})
	assert.ErrorIs(t, err, ErrFootballPredictionConflict)
	assert.Len(t, broadcaster.rooms, 1, "a rejected prediction is not broadcast")
}

func TestFootballService_CreateTeamStatBindsPathTeamID(t *testing.T) {
	svc := newFootballService(nil)
	ctx := context.Background()

	stat, err := svc.CreateTeamStat(ctx, 7, CreateTeamStatInput{LeaguePosition: ptrOf(1)})
	require.NoError(t, err)
	assert.Equal(t, 7, stat.TeamID)

	_, err = svc.CreateTeamStat(ctx, 7, CreateTeamStatInput{})
	assert.ErrorIs(t, err, ErrFootballTeamStatConflict)

	_, err = svc.CreateTeamStat(ctx, 0, CreateTeamStatInput{})
	assert.ErrorIs(t, err, ErrTeamStatTeamRequired)
}

func TestFootballService_GetMatchPredictionNotFound(t *testing.T) {
	svc := newFootballService(nil)

	_, err := svc.GetMatchPrediction(context.Background(), 99)
	assert.ErrorIs(t, err, ErrFootballPredictionNotFound)
}
