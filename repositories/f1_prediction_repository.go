package repositories

import (
	"context"
	"database/sql"

	"github.com/Dosada05/scouting-system/models"
)

type F1PredictionRepository interface {
	Create(ctx context.Context, prediction *models.F1Prediction) error
	// ListByRaceWithDrivers returns the race's predictions ordered by
	// predicted position ascending, each joined with its driver.
	// Predictions whose driver no longer exists are skipped.
	ListByRaceWithDrivers(ctx context.Context, raceID int) ([]models.F1PredictionWithDriver, error)
}

type postgresF1PredictionRepository struct {
	db *sql.DB
}

func NewPostgresF1PredictionRepository(db *sql.DB) F1PredictionRepository {
	return &postgresF1PredictionRepository{db: db}
}

func (r *postgresF1PredictionRepository) Create(ctx context.Context, prediction *models.F1Prediction) error {
	query := `
		INSERT INTO f1_predictions (race_id, driver_id, position, win_probability, factors)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		prediction.RaceID,
		prediction.DriverID,
		prediction.Position,
		prediction.WinProbability,
		prediction.Factors,
	).Scan(&prediction.ID, &prediction.CreatedAt)
}

func (r *postgresF1PredictionRepository) ListByRaceWithDrivers(ctx context.Context, raceID int) ([]models.F1PredictionWithDriver, error) {
	// INNER JOIN drops predictions with a dangling driver_id.
	query := `
		SELECT
			p.id, p.race_id, p.driver_id, p.position, p.win_probability, p.factors, p.created_at,
			d.id, d.name, d.team, d.number, d.avatar_url
		FROM
			f1_predictions p
		JOIN
			f1_drivers d ON d.id = p.driver_id
		WHERE
			p.race_id = $1
		ORDER BY
			p.position ASC NULLS LAST, p.id ASC`

	rows, err := r.db.QueryContext(ctx, query, raceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	predictions := make([]models.F1PredictionWithDriver, 0)
	for rows.Next() {
		var entry models.F1PredictionWithDriver
		if err := rows.Scan(
			&entry.ID,
			&entry.RaceID,
			&entry.DriverID,
			&entry.Position,
			&entry.WinProbability,
			&entry.Factors,
			&entry.CreatedAt,
			&entry.Driver.ID,
			&entry.Driver.Name,
			&entry.Driver.Team,
			&entry.Driver.Number,
			&entry.Driver.AvatarURL,
		); err != nil {
			return nil, err
		}
		predictions = append(predictions, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return predictions, nil
}
