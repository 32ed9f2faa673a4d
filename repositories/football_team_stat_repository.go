package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/scouting-system/models"
	"github.com/lib/pq"
)

var (
	ErrFootballTeamStatNotFound = errors.New("football team stats not found")
	ErrFootballTeamStatConflict = errors.New("team already has a stats record")
)

type FootballTeamStatRepository interface {
	Create(ctx context.Context, stat *models.FootballTeamStat) error
	// GetByTeamID returns the stats row for a team; legacy duplicates
	// resolve to the lowest id.
	GetByTeamID(ctx context.Context, teamID int) (*models.FootballTeamStat, error)
	// List returns stats ordered by league position ascending. A non-empty
	// league restricts the result to stats of teams playing in that league.
	List(ctx context.Context, league string) ([]models.FootballTeamStat, error)
}

const footballTeamStatColumns = `id, team_id, league_position, win_probability, form,
	goal_difference, points, recent_results, created_at`

type postgresFootballTeamStatRepository struct {
	db *sql.DB
}

func NewPostgresFootballTeamStatRepository(db *sql.DB) FootballTeamStatRepository {
	return &postgresFootballTeamStatRepository{db: db}
}

func (r *postgresFootballTeamStatRepository) Create(ctx context.Context, stat *models.FootballTeamStat) error {
	query := `
		INSERT INTO football_team_stats (team_id, league_position, win_probability, form,
			goal_difference, points, recent_results)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		stat.TeamID,
		stat.LeaguePosition,
		stat.WinProbability,
		stat.Form,
		stat.GoalDifference,
		stat.Points,
		stat.RecentResults,
	).Scan(&stat.ID, &stat.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "football_team_stats_team_id_key" {
				return ErrFootballTeamStatConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresFootballTeamStatRepository) GetByTeamID(ctx context.Context, teamID int) (*models.FootballTeamStat, error) {
	query := `SELECT ` + footballTeamStatColumns + ` FROM football_team_stats WHERE team_id = $1 ORDER BY id ASC LIMIT 1`
	return r.scanStat(r.db.QueryRowContext(ctx, query, teamID))
}

func (r *postgresFootballTeamStatRepository) List(ctx context.Context, league string) ([]models.FootballTeamStat, error) {
	query := `
		SELECT s.id, s.team_id, s.league_position, s.win_probability, s.form,
			s.goal_difference, s.points, s.recent_results, s.created_at
		FROM football_team_stats s
		ORDER BY s.league_position ASC NULLS LAST, s.id ASC`
	args := []interface{}{}

	if league != "" {
		query = `
			SELECT s.id, s.team_id, s.league_position, s.win_probability, s.form,
				s.goal_difference, s.points, s.recent_results, s.created_at
			FROM football_team_stats s
			JOIN football_teams t ON t.id = s.team_id
			WHERE t.league = $1
			ORDER BY s.league_position ASC NULLS LAST, s.id ASC`
		args = append(args, league)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]models.FootballTeamStat, 0)
	for rows.Next() {
		var stat models.FootballTeamStat
		if err := rows.Scan(
			&stat.ID,
			&stat.TeamID,
			&stat.LeaguePosition,
			&stat.WinProbability,
			&stat.Form,
			&stat.GoalDifference,
			&stat.Points,
			&stat.RecentResults,
			&stat.CreatedAt,
		); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *postgresFootballTeamStatRepository) scanStat(row *sql.Row) (*models.FootballTeamStat, error) {
	var stat models.FootballTeamStat
	err := row.Scan(
		&stat.ID,
		&stat.TeamID,
		&stat.LeaguePosition,
		&stat.WinProbability,
		&stat.Form,
		&stat.GoalDifference,
		&stat.Points,
		&stat.RecentResults,
		&stat.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFootballTeamStatNotFound
		}
		return nil, err
	}
	return &stat, nil
}
