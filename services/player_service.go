package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/repositories"
	"github.com/Dosada05/scouting-system/storage"
)

var (
	ErrPlayerNameRequired      = errors.New("player name is required")
	ErrPlayerCreationFailed    = errors.New("failed to create player")
	ErrPlayerUpdateFailed      = errors.New("failed to update player")
	ErrMetricsPlayerIDRequired = errors.New("metrics playerId is required")
	ErrMetricsCreationFailed   = errors.New("failed to create player metrics")
	ErrMetricsUpdateFailed     = errors.New("failed to update player metrics")
	ErrAvatarUploadFailed      = errors.New("failed to upload player avatar")
	ErrUploaderNotConfigured   = errors.New("file uploader is not configured")
)

type PlayerService interface {
	GetAllPlayers(ctx context.Context) ([]models.Player, error)
	// GetPlayerByID returns the player joined with its metrics record;
	// Metrics is nil when the player has none.
	GetPlayerByID(ctx context.Context, id int) (*models.PlayerWithMetrics, error)
	GetTopPlayers(ctx context.Context, limit int) ([]models.PlayerWithMetrics, error)
	CreatePlayer(ctx context.Context, input CreatePlayerInput) (*models.Player, error)
	UpdatePlayer(ctx context.Context, id int, patch models.PlayerPatch) (*models.Player, error)
	CreateMetrics(ctx context.Context, input CreatePlayerMetricsInput) (*models.PlayerMetrics, error)
	UpdateMetrics(ctx context.Context, id int, patch models.PlayerMetricsPatch) (*models.PlayerMetrics, error)
	UploadAvatar(ctx context.Context, playerID int, fileName, contentType string, file io.Reader) (*models.Player, error)
}

type CreatePlayerInput struct {
	Name             string
	Age              *int
	Team             *string
	Position         *string
	Description      *string
	AvatarURL        *string
	RecruitmentMatch *int
}

type CreatePlayerMetricsInput struct {
	PlayerID    int
	Pace        *float64
	Technique   *float64
	Finishing   *float64
	Passing     *float64
	Vision      *float64
	Stamina     *float64
	Tackling    *float64
	Strength    *float64
	Positioning *float64
	Agility     *float64
	BallControl *float64
	Speed       *float64
}

type playerService struct {
	playerRepo  repositories.PlayerRepository
	metricsRepo repositories.PlayerMetricsRepository
	uploader    storage.FileUploader
}

func NewPlayerService(
	playerRepo repositories.PlayerRepository,
	metricsRepo repositories.PlayerMetricsRepository,
	uploader storage.FileUploader,
) PlayerService {
	return &playerService{
		playerRepo:  playerRepo,
		metricsRepo: metricsRepo,
		uploader:    uploader,
	}
}

func (s *playerService) GetAllPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := s.playerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all players: %w", err)
	}
	if players == nil {
		return []models.Player{}, nil
	}
	return players, nil
}

func (s *playerService) GetPlayerByID(ctx context.Context, id int) (*models.PlayerWithMetrics, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by id %d: %w", id, err)
	}

	result := &models.PlayerWithMetrics{Player: *player}

	metrics, err := s.metricsRepo.GetByPlayerID(ctx, id)
	switch {
	case err == nil:
		result.Metrics = metrics
	case errors.Is(err, repositories.ErrPlayerMetricsNotFound):
		// no metrics yet, leave nil
	default:
		return nil, fmt.Errorf("failed to get metrics for player %d: %w", id, err)
	}

	return result, nil
}

func (s *playerService) GetTopPlayers(ctx context.Context, limit int) ([]models.PlayerWithMetrics, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}
	players, err := s.playerRepo.GetTop(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top players: %w", err)
	}
	if players == nil {
		return []models.PlayerWithMetrics{}, nil
	}
	return players, nil
}

func (s *playerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (*models.Player, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrPlayerNameRequired
	}

	player := &models.Player{
		Name:             name,
		Age:              input.Age,
		Team:             input.Team,
		Position:         input.Position,
		Description:      input.Description,
		AvatarURL:        input.AvatarURL,
		RecruitmentMatch: input.RecruitmentMatch,
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPlayerCreationFailed, err)
	}
	return player, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, id int, patch models.PlayerPatch) (*models.Player, error) {
	// Name is non-nullable: an explicit null or blank value is rejected,
	// an absent field keeps the prior name.
	if patch.Name.Set {
		if patch.Name.Value == nil || strings.TrimSpace(*patch.Name.Value) == "" {
			return nil, ErrPlayerNameRequired
		}
	}

	player, err := s.playerRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%w (id: %d): %w", ErrPlayerUpdateFailed, id, err)
	}
	return player, nil
}

func (s *playerService) CreateMetrics(ctx context.Context, input CreatePlayerMetricsInput) (*models.PlayerMetrics, error) {
	if input.PlayerID < 1 {
		return nil, ErrMetricsPlayerIDRequired
	}

	metrics := &models.PlayerMetrics{
		PlayerID:    input.PlayerID,
		Pace:        input.Pace,
		Technique:   input.Technique,
		Finishing:   input.Finishing,
		Passing:     input.Passing,
		Vision:      input.Vision,
		Stamina:     input.Stamina,
		Tackling:    input.Tackling,
		Strength:    input.Strength,
		Positioning: input.Positioning,
		Agility:     input.Agility,
		BallControl: input.BallControl,
		Speed:       input.Speed,
	}

	if err := s.metricsRepo.Create(ctx, metrics); err != nil {
		if errors.Is(err, repositories.ErrPlayerMetricsConflict) {
			return nil, ErrPlayerMetricsConflict
		}
		return nil, fmt.Errorf("%w: %w", ErrMetricsCreationFailed, err)
	}
	return metrics, nil
}

func (s *playerService) UpdateMetrics(ctx context.Context, id int, patch models.PlayerMetricsPatch) (*models.PlayerMetrics, error) {
	if patch.PlayerID.Set && patch.PlayerID.Value == nil {
		return nil, ErrMetricsPlayerIDRequired
	}

	metrics, err := s.metricsRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerMetricsNotFound) {
			return nil, ErrPlayerMetricsNotFound
		}
		return nil, fmt.Errorf("%w (id: %d): %w", ErrMetricsUpdateFailed, id, err)
	}
	return metrics, nil
}

func (s *playerService) UploadAvatar(ctx context.Context, playerID int, fileName, contentType string, file io.Reader) (*models.Player, error) {
	if s.uploader == nil {
		return nil, ErrUploaderNotConfigured
	}

	if _, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by id %d: %w", playerID, err)
	}

	key := fmt.Sprintf("players/%d/avatar%s", playerID, strings.ToLower(path.Ext(fileName)))
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("%w (player: %d): %w", ErrAvatarUploadFailed, playerID, err)
	}

	patch := models.PlayerPatch{AvatarURL: models.Some(result.Location)}
	player, err := s.playerRepo.Update(ctx, playerID, patch)
	if err != nil {
		return nil, fmt.Errorf("%w (player: %d): %w", ErrPlayerUpdateFailed, playerID, err)
	}
	return player, nil
}
