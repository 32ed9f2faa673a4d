package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/scouting-system/models"
	"github.com/lib/pq"
)

var (
	ErrPlayerMetricsNotFound = errors.New("player metrics not found")
	ErrPlayerMetricsConflict = errors.New("player already has a metrics record")
)

type PlayerMetricsRepository interface {
	Create(ctx context.Context, metrics *models.PlayerMetrics) error
	// GetByPlayerID returns the metrics record for a player. Should legacy
	// duplicates exist, the lowest id wins.
	GetByPlayerID(ctx context.Context, playerID int) (*models.PlayerMetrics, error)
	Update(ctx context.Context, id int, patch models.PlayerMetricsPatch) (*models.PlayerMetrics, error)
}

const playerMetricsColumns = `id, player_id, pace, technique, finishing, passing, vision, stamina,
	tackling, strength, positioning, agility, ball_control, speed, created_at`

type postgresPlayerMetricsRepository struct {
	db *sql.DB
}

func NewPostgresPlayerMetricsRepository(db *sql.DB) PlayerMetricsRepository {
	return &postgresPlayerMetricsRepository{db: db}
}

func (r *postgresPlayerMetricsRepository) Create(ctx context.Context, metrics *models.PlayerMetrics) error {
	query := `
		INSERT INTO player_metrics (player_id, pace, technique, finishing, passing, vision, stamina,
			tackling, strength, positioning, agility, ball_control, speed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		metrics.PlayerID,
		metrics.Pace,
		metrics.Technique,
		metrics.Finishing,
		metrics.Passing,
		metrics.Vision,
		metrics.Stamina,
		metrics.Tackling,
		metrics.Strength,
		metrics.Positioning,
		metrics.Agility,
		metrics.BallControl,
		metrics.Speed,
	).Scan(&metrics.ID, &metrics.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "player_metrics_player_id_key" {
				return ErrPlayerMetricsConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresPlayerMetricsRepository) GetByPlayerID(ctx context.Context, playerID int) (*models.PlayerMetrics, error) {
	query := `SELECT ` + playerMetricsColumns + ` FROM player_metrics WHERE player_id = $1 ORDER BY id ASC LIMIT 1`
	return r.scanMetrics(r.db.QueryRowContext(ctx, query, playerID))
}

func (r *postgresPlayerMetricsRepository) Update(ctx context.Context, id int, patch models.PlayerMetricsPatch) (*models.PlayerMetrics, error) {
	var b updateBuilder
	if patch.PlayerID.Set && patch.PlayerID.Value != nil {
		b.set("player_id", *patch.PlayerID.Value)
	}
	setOptional(&b, "pace", patch.Pace)
	setOptional(&b, "technique", patch.Technique)
	setOptional(&b, "finishing", patch.Finishing)
	setOptional(&b, "passing", patch.Passing)
	setOptional(&b, "vision", patch.Vision)
	setOptional(&b, "stamina", patch.Stamina)
	setOptional(&b, "tackling", patch.Tackling)
	setOptional(&b, "strength", patch.Strength)
	setOptional(&b, "positioning", patch.Positioning)
	setOptional(&b, "agility", patch.Agility)
	setOptional(&b, "ball_control", patch.BallControl)
	setOptional(&b, "speed", patch.Speed)

	if b.empty() {
		query := `SELECT ` + playerMetricsColumns + ` FROM player_metrics WHERE id = $1`
		return r.scanMetrics(r.db.QueryRowContext(ctx, query, id))
	}

	query, args := b.build("player_metrics", playerMetricsColumns, id)
	return r.scanMetrics(r.db.QueryRowContext(ctx, query, args...))
}

func (r *postgresPlayerMetricsRepository) scanMetrics(row *sql.Row) (*models.PlayerMetrics, error) {
	var metrics models.PlayerMetrics
	err := row.Scan(
		&metrics.ID,
		&metrics.PlayerID,
		&metrics.Pace,
		&metrics.Technique,
		&metrics.Finishing,
		&metrics.Passing,
		&metrics.Vision,
		&metrics.Stamina,
		&metrics.Tackling,
		&metrics.Strength,
		&metrics.Positioning,
		&metrics.Agility,
		&metrics.BallControl,
		&metrics.Speed,
		&metrics.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerMetricsNotFound
		}
		return nil, err
	}
	return &metrics, nil
}
