package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/scouting-system/models"
)

var ErrFootballMatchNotFound = errors.New("football match not found")

type FootballMatchRepository interface {
	Create(ctx context.Context, match *models.FootballMatch) error
	GetByID(ctx context.Context, id int) (*models.FootballMatch, error)
	// ListUpcoming returns matches with status "upcoming" ordered by date
	// ascending; matches without a date sort last.
	ListUpcoming(ctx context.Context) ([]models.FootballMatch, error)
}

type postgresFootballMatchRepository struct {
	db *sql.DB
}

func NewPostgresFootballMatchRepository(db *sql.DB) FootballMatchRepository {
	return &postgresFootballMatchRepository{db: db}
}

func (r *postgresFootballMatchRepository) Create(ctx context.Context, match *models.FootballMatch) error {
	query := `
		INSERT INTO football_matches (home_team_id, away_team_id, date, status, home_score, away_score)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		match.HomeTeamID,
		match.AwayTeamID,
		match.Date,
		match.Status,
		match.HomeScore,
		match.AwayScore,
	).Scan(&match.ID)
}

func (r *postgresFootballMatchRepository) GetByID(ctx context.Context, id int) (*models.FootballMatch, error) {
	query := `
		SELECT id, home_team_id, away_team_id, date, status, home_score, away_score
		FROM football_matches
		WHERE id = $1`

	var match models.FootballMatch
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&match.ID,
		&match.HomeTeamID,
		&match.AwayTeamID,
		&match.Date,
		&match.Status,
		&match.HomeScore,
		&match.AwayScore,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFootballMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *postgresFootballMatchRepository) ListUpcoming(ctx context.Context) ([]models.FootballMatch, error) {
	query := `
		SELECT id, home_team_id, away_team_id, date, status, home_score, away_score
		FROM football_matches
		WHERE status = $1
		ORDER BY date ASC NULLS LAST, id ASC`

	rows, err := r.db.QueryContext(ctx, query, models.MatchStatusUpcoming)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.FootballMatch, 0)
	for rows.Next() {
		var match models.FootballMatch
		if err := rows.Scan(
			&match.ID,
			&match.HomeTeamID,
			&match.AwayTeamID,
			&match.Date,
			&match.Status,
			&match.HomeScore,
			&match.AwayScore,
		); err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}
