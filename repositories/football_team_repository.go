package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/scouting-system/models"
)

var ErrFootballTeamNotFound = errors.New("football team not found")

type FootballTeamRepository interface {
	Create(ctx context.Context, team *models.FootballTeam) error
	GetByID(ctx context.Context, id int) (*models.FootballTeam, error)
	GetAll(ctx context.Context) ([]models.FootballTeam, error)
}

type postgresFootballTeamRepository struct {
	db *sql.DB
}

func NewPostgresFootballTeamRepository(db *sql.DB) FootballTeamRepository {
	return &postgresFootballTeamRepository{db: db}
}

func (r *postgresFootballTeamRepository) Create(ctx context.Context, team *models.FootballTeam) error {
	query := `
		INSERT INTO football_teams (name, league, logo_url)
		VALUES ($1, $2, $3)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		team.Name,
		team.League,
		team.LogoURL,
	).Scan(&team.ID)
}

func (r *postgresFootballTeamRepository) GetByID(ctx context.Context, id int) (*models.FootballTeam, error) {
	query := `SELECT id, name, league, logo_url FROM football_teams WHERE id = $1`

	var team models.FootballTeam
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&team.ID,
		&team.Name,
		&team.League,
		&team.LogoURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFootballTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *postgresFootballTeamRepository) GetAll(ctx context.Context) ([]models.FootballTeam, error) {
	query := `SELECT id, name, league, logo_url FROM football_teams ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.FootballTeam, 0)
	for rows.Next() {
		var team models.FootballTeam
		if err := rows.Scan(
			&team.ID,
			&team.Name,
			&team.League,
			&team.LogoURL,
		); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}
