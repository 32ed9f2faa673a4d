package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/scouting-system/models"
	"github.com/lib/pq"
)

var (
	ErrFootballPredictionNotFound = errors.New("football prediction not found")
	ErrFootballPredictionConflict = errors.New("match already has a prediction")
)

type FootballPredictionRepository interface {
	Create(ctx context.Context, prediction *models.FootballPrediction) error
	// GetByMatchID returns the prediction for a match; legacy duplicates
	// resolve to the lowest id.
	GetByMatchID(ctx context.Context, matchID int) (*models.FootballPrediction, error)
}

const footballPredictionColumns = `id, match_id, predicted_home_score, predicted_away_score,
	win_probability, draw_probability, loss_probability, confidence, stats, created_at`

type postgresFootballPredictionRepository struct {
	db *sql.DB
}

func NewPostgresFootballPredictionRepository(db *sql.DB) FootballPredictionRepository {
	return &postgresFootballPredictionRepository{db: db}
}

func (r *postgresFootballPredictionRepository) Create(ctx context.Context, prediction *models.FootballPrediction) error {
	query := `
		INSERT INTO football_predictions (match_id, predicted_home_score, predicted_away_score,
			win_probability, draw_probability, loss_probability, confidence, stats)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		prediction.MatchID,
		prediction.PredictedHomeScore,
		prediction.PredictedAwayScore,
		prediction.WinProbability,
		prediction.DrawProbability,
		prediction.LossProbability,
		prediction.Confidence,
		prediction.Stats,
	).Scan(&prediction.ID, &prediction.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "football_predictions_match_id_key" {
				return ErrFootballPredictionConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresFootballPredictionRepository) GetByMatchID(ctx context.Context, matchID int) (*models.FootballPrediction, error) {
	query := `SELECT ` + footballPredictionColumns + ` FROM football_predictions WHERE match_id = $1 ORDER BY id ASC LIMIT 1`

	var prediction models.FootballPrediction
	err := r.db.QueryRowContext(ctx, query, matchID).Scan(
		&prediction.ID,
		&prediction.MatchID,
		&prediction.PredictedHomeScore,
		&prediction.PredictedAwayScore,
		&prediction.WinProbability,
		&prediction.DrawProbability,
		&prediction.LossProbability,
		&prediction.Confidence,
		&prediction.Stats,
		&prediction.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFootballPredictionNotFound
		}
		return nil, err
	}
	return &prediction, nil
}
