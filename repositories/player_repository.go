package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/scouting-system/models"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	GetAll(ctx context.Context) ([]models.Player, error)
	// GetTop returns up to limit players ordered by recruitment match
	// descending (absent values count as 0), each joined with its metrics
	// record. A join miss yields a nil Metrics, not an error.
	GetTop(ctx context.Context, limit int) ([]models.PlayerWithMetrics, error)
	Update(ctx context.Context, id int, patch models.PlayerPatch) (*models.Player, error)
}

const playerColumns = `id, name, age, team, position, description, avatar_url, recruitment_match, created_at`

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (name, age, team, position, description, avatar_url, recruitment_match)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		player.Name,
		player.Age,
		player.Team,
		player.Position,
		player.Description,
		player.AvatarURL,
		player.RecruitmentMatch,
	).Scan(&player.ID, &player.CreatedAt)
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	var player models.Player
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&player.ID,
		&player.Name,
		&player.Age,
		&player.Team,
		&player.Position,
		&player.Description,
		&player.AvatarURL,
		&player.RecruitmentMatch,
		&player.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (r *postgresPlayerRepository) GetAll(ctx context.Context) ([]models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var player models.Player
		if err := rows.Scan(
			&player.ID,
			&player.Name,
			&player.Age,
			&player.Team,
			&player.Position,
			&player.Description,
			&player.AvatarURL,
			&player.RecruitmentMatch,
			&player.CreatedAt,
		); err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *postgresPlayerRepository) GetTop(ctx context.Context, limit int) ([]models.PlayerWithMetrics, error) {
	query := `
		SELECT
			p.id, p.name, p.age, p.team, p.position, p.description, p.avatar_url, p.recruitment_match, p.created_at,
			m.id, m.player_id, m.pace, m.technique, m.finishing, m.passing, m.vision, m.stamina,
			m.tackling, m.strength, m.positioning, m.agility, m.ball_control, m.speed, m.created_at
		FROM
			players p
		LEFT JOIN
			player_metrics m ON m.player_id = p.id
		ORDER BY
			COALESCE(p.recruitment_match, 0) DESC, p.id ASC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]models.PlayerWithMetrics, 0, limit)
	for rows.Next() {
		var entry models.PlayerWithMetrics
		var metrics models.PlayerMetrics

		var metricsID sql.NullInt64
		var metricsPlayerID sql.NullInt64
		var metricsCreatedAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.Name,
			&entry.Age,
			&entry.Team,
			&entry.Position,
			&entry.Description,
			&entry.AvatarURL,
			&entry.RecruitmentMatch,
			&entry.CreatedAt,
			// Metrics columns may all be NULL on a join miss.
			&metricsID,
			&metricsPlayerID,
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
			&metricsCreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player with metrics: %w", err)
		}

		if metricsID.Valid {
			metrics.ID = int(metricsID.Int64)
			metrics.PlayerID = int(metricsPlayerID.Int64)
			metrics.CreatedAt = metricsCreatedAt.Time
			entry.Metrics = &metrics
		}
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresPlayerRepository) Update(ctx context.Context, id int, patch models.PlayerPatch) (*models.Player, error) {
	var b updateBuilder
	if patch.Name.Set && patch.Name.Value != nil {
		b.set("name", *patch.Name.Value)
	}
	setOptional(&b, "age", patch.Age)
	setOptional(&b, "team", patch.Team)
	setOptional(&b, "position", patch.Position)
	setOptional(&b, "description", patch.Description)
	setOptional(&b, "avatar_url", patch.AvatarURL)
	setOptional(&b, "recruitment_match", patch.RecruitmentMatch)

	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.build("players", playerColumns, id)

	var player models.Player
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&player.ID,
		&player.Name,
		&player.Age,
		&player.Team,
		&player.Position,
		&player.Description,
		&player.AvatarURL,
		&player.RecruitmentMatch,
		&player.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}
