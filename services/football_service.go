package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dosada05/scouting-system/live"
	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/repositories"
)

var (
	ErrTeamNameRequired              = errors.New("team name is required")
	ErrMatchTeamsRequired            = errors.New("match homeTeamId and awayTeamId are required")
	ErrInvalidMatchStatus            = errors.New("invalid match status")
	ErrPredictionMatchRequired       = errors.New("prediction matchId is required")
	ErrTeamStatTeamRequired          = errors.New("team stats teamId is required")
	ErrTeamCreationFailed            = errors.New("failed to create team")
	ErrMatchCreationFailed           = errors.New("failed to create match")
	ErrMatchPredictionCreationFailed = errors.New("failed to create match prediction")
	ErrTeamStatCreationFailed        = errors.New("failed to create team stats")
)

type FootballService interface {
	GetAllTeams(ctx context.Context) ([]models.FootballTeam, error)
	CreateTeam(ctx context.Context, input CreateFootballTeamInput) (*models.FootballTeam, error)
	GetUpcomingMatches(ctx context.Context) ([]models.FootballMatch, error)
	CreateMatch(ctx context.Context, input CreateFootballMatchInput) (*models.FootballMatch, error)
	GetMatchPrediction(ctx context.Context, matchID int) (*models.FootballPrediction, error)
	CreatePrediction(ctx context.Context, input CreateFootballPredictionInput) (*models.FootballPrediction, error)
	// GetTeamStats lists stats ordered by league position; a non-empty
	// league limits the result to that league's teams.
	GetTeamStats(ctx context.Context, league string) ([]models.FootballTeamStat, error)
	GetTeamStatByTeam(ctx context.Context, teamID int) (*models.FootballTeamStat, error)
	// CreateTeamStat binds the stats record to the teamID from the request
	// path; any teamId in the body is ignored.
	CreateTeamStat(ctx context.Context, teamID int, input CreateTeamStatInput) (*models.FootballTeamStat, error)
}

type CreateFootballTeamInput struct {
	Name    string
	League  *string
	LogoURL *string
}

type CreateFootballMatchInput struct {
	HomeTeamID int
	AwayTeamID int
	Date       *time.Time
	Status     *models.MatchStatus
	HomeScore  *int
	AwayScore  *int
}

type CreateFootballPredictionInput struct {
	MatchID            int
	PredictedHomeScore *int
	PredictedAwayScore *int
	WinProbability     *float64
	DrawProbability    *float64
	LossProbability    *float64
	Confidence         *int
	Stats              models.Document
}

type CreateTeamStatInput struct {
	LeaguePosition *int
	WinProbability *float64
	Form           *string
	GoalDifference *int
	Points         *int
	RecentResults  models.Document
}

type footballService struct {
	teamRepo       repositories.FootballTeamRepository
	matchRepo      repositories.FootballMatchRepository
	predictionRepo repositories.FootballPredictionRepository
	statRepo       repositories.FootballTeamStatRepository
	broadcaster    Broadcaster
}

func NewFootballService(
	teamRepo repositories.FootballTeamRepository,
	matchRepo repositories.FootballMatchRepository,
	predictionRepo repositories.FootballPredictionRepository,
	statRepo repositories.FootballTeamStatRepository,
	broadcaster Broadcaster,
) FootballService {
	return &footballService{
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		predictionRepo: predictionRepo,
		statRepo:       statRepo,
		broadcaster:    broadcaster,
	}
}

func (s *footballService) GetAllTeams(ctx context.Context) ([]models.FootballTeam, error) {
	teams, err := s.teamRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all teams: %w", err)
	}
	if teams == nil {
		return []models.FootballTeam{}, nil
	}
	return teams, nil
}

func (s *footballService) CreateTeam(ctx context.Context, input CreateFootballTeamInput) (*models.FootballTeam, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	team := &models.FootballTeam{
		Name:    name,
		League:  input.League,
		LogoURL: input.LogoURL,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTeamCreationFailed, err)
	}
	return team, nil
}

func (s *footballService) GetUpcomingMatches(ctx context.Context) ([]models.FootballMatch, error) {
	matches, err := s.matchRepo.ListUpcoming(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming matches: %w", err)
	}
	if matches == nil {
		return []models.FootballMatch{}, nil
	}
	return matches, nil
}

func (s *footballService) CreateMatch(ctx context.Context, input CreateFootballMatchInput) (*models.FootballMatch, error) {
	if input.HomeTeamID < 1 || input.AwayTeamID < 1 {
		return nil, ErrMatchTeamsRequired
	}

	status := models.MatchStatusUpcoming
	if input.Status != nil {
		switch *input.Status {
		case models.MatchStatusUpcoming, models.MatchStatusCompleted:
			status = *input.Status
		default:
			return nil, ErrInvalidMatchStatus
		}
	}

	match := &models.FootballMatch{
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		Date:       input.Date,
		Status:     status,
		HomeScore:  input.HomeScore,
		AwayScore:  input.AwayScore,
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMatchCreationFailed, err)
	}
	return match, nil
}

func (s *footballService) GetMatchPrediction(ctx context.Context, matchID int) (*models.FootballPrediction, error) {
	prediction, err := s.predictionRepo.GetByMatchID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrFootballPredictionNotFound) {
			return nil, ErrFootballPredictionNotFound
		}
		return nil, fmt.Errorf("failed to get prediction for match %d: %w", matchID, err)
	}
	return prediction, nil
}

func (s *footballService) CreatePrediction(ctx context.Context, input CreateFootballPredictionInput) (*models.FootballPrediction, error) {
	if input.MatchID < 1 {
		return nil, ErrPredictionMatchRequired
	}

	prediction := &models.FootballPrediction{
		MatchID:            input.MatchID,
		PredictedHomeScore: input.PredictedHomeScore,
		PredictedAwayScore: input.PredictedAwayScore,
		WinProbability:     input.WinProbability,
		DrawProbability:    input.DrawProbability,
		LossProbability:    input.LossProbability,
		Confidence:         input.Confidence,
		Stats:              input.Stats,
	}

	if err := s.predictionRepo.Create(ctx, prediction); err != nil {
		if errors.Is(err, repositories.ErrFootballPredictionConflict) {
			return nil, ErrFootballPredictionConflict
		}
		return nil, fmt.Errorf("%w: %w", ErrMatchPredictionCreationFailed, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToRoom(live.MatchRoom(prediction.MatchID), live.Message{
			Type:    "FOOTBALL_PREDICTION_CREATED",
			Payload: prediction,
		})
	}

	return prediction, nil
}

func (s *footballService) GetTeamStats(ctx context.Context, league string) ([]models.FootballTeamStat, error) {
	stats, err := s.statRepo.List(ctx, league)
	if err != nil {
		return nil, fmt.Errorf("failed to get team stats: %w", err)
	}
	if stats == nil {
		return []models.FootballTeamStat{}, nil
	}
	return stats, nil
}

func (s *footballService) GetTeamStatByTeam(ctx context.Context, teamID int) (*models.FootballTeamStat, error) {
	stat, err := s.statRepo.GetByTeamID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrFootballTeamStatNotFound) {
			return nil, ErrFootballTeamStatNotFound
		}
		return nil, fmt.Errorf("failed to get stats for team %d: %w", teamID, err)
	}
	return stat, nil
}

func (s *footballService) CreateTeamStat(ctx context.Context, teamID int, input CreateTeamStatInput) (*models.FootballTeamStat, error) {
	if teamID < 1 {
		return nil, ErrTeamStatTeamRequired
	}

	stat := &models.FootballTeamStat{
		TeamID:         teamID,
		LeaguePosition: input.LeaguePosition,
		WinProbability: input.WinProbability,
		Form:           input.Form,
		GoalDifference: input.GoalDifference,
		Points:         input.Points,
		RecentResults:  input.RecentResults,
	}

	if err := s.statRepo.Create(ctx, stat); err != nil {
		if errors.Is(err, repositories.ErrFootballTeamStatConflict) {
			return nil, ErrFootballTeamStatConflict
		}
		return nil, fmt.Errorf("%w: %w", ErrTeamStatCreationFailed, err)
	}
	return stat, nil
}
