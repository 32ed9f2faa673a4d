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
	ErrDriverNameRequired       = errors.New("driver name is required")
	ErrDriverTeamRequired       = errors.New("driver team is required")
	ErrRaceNameRequired         = errors.New("race name is required")
	ErrInvalidRaceStatus        = errors.New("invalid race status")
	ErrPredictionRaceRequired   = errors.New("prediction raceId is required")
	ErrPredictionDriverRequired = errors.New("prediction driverId is required")
	ErrDriverCreationFailed     = errors.New("failed to create driver")
	ErrRaceCreationFailed       = errors.New("failed to create race")
	ErrPredictionCreationFailed = errors.New("failed to create prediction")
)

type F1Service interface {
	GetAllDrivers(ctx context.Context) ([]models.F1Driver, error)
	CreateDriver(ctx context.Context, input CreateF1DriverInput) (*models.F1Driver, error)
	GetUpcomingRaces(ctx context.Context) ([]models.F1Race, error)
	CreateRace(ctx context.Context, input CreateF1RaceInput) (*models.F1Race, error)
	// GetRacePredictions returns the race's predictions joined with their
	// drivers, ordered by predicted position. Predictions whose driver no
	// longer exists are omitted.
	GetRacePredictions(ctx context.Context, raceID int) ([]models.F1PredictionWithDriver, error)
	CreatePrediction(ctx context.Context, input CreateF1PredictionInput) (*models.F1Prediction, error)
}

type CreateF1DriverInput struct {
	Name      string
	Team      string
	Number    *int
	AvatarURL *string
}

type CreateF1RaceInput struct {
	Name     string
	Location *string
	Date     *time.Time
	Status   *models.RaceStatus
}

type CreateF1PredictionInput struct {
	RaceID         int
	DriverID       int
	Position       *int
	WinProbability *float64
	Factors        models.Document
}

type f1Service struct {
	driverRepo     repositories.F1DriverRepository
	raceRepo       repositories.F1RaceRepository
	predictionRepo repositories.F1PredictionRepository
	broadcaster    Broadcaster
}

func NewF1Service(
	driverRepo repositories.F1DriverRepository,
	raceRepo repositories.F1RaceRepository,
	predictionRepo repositories.F1PredictionRepository,
	broadcaster Broadcaster,
) F1Service {
	return &f1Service{
		driverRepo:     driverRepo,
		raceRepo:       raceRepo,
		predictionRepo: predictionRepo,
		broadcaster:    broadcaster,
	}
}

func (s *f1Service) GetAllDrivers(ctx context.Context) ([]models.F1Driver, error) {
	drivers, err := s.driverRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all drivers: %w", err)
	}
	if drivers == nil {
		return []models.F1Driver{}, nil
	}
	return drivers, nil
}

func (s *f1Service) CreateDriver(ctx context.Context, input CreateF1DriverInput) (*models.F1Driver, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrDriverNameRequired
	}
	team := strings.TrimSpace(input.Team)
	if team == "" {
		return nil, ErrDriverTeamRequired
	}

	driver := &models.F1Driver{
		Name:      name,
		Team:      team,
		Number:    input.Number,
		AvatarURL: input.AvatarURL,
	}

	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDriverCreationFailed, err)
	}
	return driver, nil
}

func (s *f1Service) GetUpcomingRaces(ctx context.Context) ([]models.F1Race, error) {
	races, err := s.raceRepo.ListUpcoming(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming races: %w", err)
	}
	if races == nil {
		return []models.F1Race{}, nil
	}
	return races, nil
}

func (s *f1Service) CreateRace(ctx context.Context, input CreateF1RaceInput) (*models.F1Race, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrRaceNameRequired
	}

	status := models.RaceStatusUpcoming
	if input.Status != nil {
		switch *input.Status {
		case models.RaceStatusUpcoming, models.RaceStatusCompleted:
			status = *input.Status
		default:
			return nil, ErrInvalidRaceStatus
		}
	}

	race := &models.F1Race{
		Name:     name,
		Location: input.Location,
		Date:     input.Date,
		Status:   status,
	}

	if err := s.raceRepo.Create(ctx, race); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRaceCreationFailed, err)
	}
	return race, nil
}

func (s *f1Service) GetRacePredictions(ctx context.Context, raceID int) ([]models.F1PredictionWithDriver, error) {
	predictions, err := s.predictionRepo.ListByRaceWithDrivers(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get predictions for race %d: %w", raceID, err)
	}
	if predictions == nil {
		return []models.F1PredictionWithDriver{}, nil
	}
	return predictions, nil
}

func (s *f1Service) CreatePrediction(ctx context.Context, input CreateF1PredictionInput) (*models.F1Prediction, error) {
	if input.RaceID < 1 {
		return nil, ErrPredictionRaceRequired
	}
	if input.DriverID < 1 {
		return nil, ErrPredictionDriverRequired
	}

	prediction := &models.F1Prediction{
		RaceID:         input.RaceID,
		DriverID:       input.DriverID,
		Position:       input.Position,
		WinProbability: input.WinProbability,
		Factors:        input.Factors,
	}

	if err := s.predictionRepo.Create(ctx, prediction); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPredictionCreationFailed, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToRoom(live.RaceRoom(prediction.RaceID), live.Message{
			Type:    "F1_PREDICTION_CREATED",
			Payload: prediction,
		})
	}

	return prediction, nil
}
