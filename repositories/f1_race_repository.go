package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/scouting-system/models"
)

var ErrF1RaceNotFound = errors.New("f1 race not found")

type F1RaceRepository interface {
	Create(ctx context.Context, race *models.F1Race) error
	GetByID(ctx context.Context, id int) (*models.F1Race, error)
	// ListUpcoming returns races with status "upcoming" ordered by date
	// ascending; races without a date sort last.
	ListUpcoming(ctx context.Context) ([]models.F1Race, error)
}

type postgresF1RaceRepository struct {
	db *sql.DB
}

func NewPostgresF1RaceRepository(db *sql.DB) F1RaceRepository {
	return &postgresF1RaceRepository{db: db}
}

func (r *postgresF1RaceRepository) Create(ctx context.Context, race *models.F1Race) error {
	query := `
		INSERT INTO f1_races (name, location, date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		race.Name,
		race.Location,
		race.Date,
		race.Status,
	).Scan(&race.ID)
}

func (r *postgresF1RaceRepository) GetByID(ctx context.Context, id int) (*models.F1Race, error) {
	query := `SELECT id, name, location, date, status FROM f1_races WHERE id = $1`

	var race models.F1Race
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&race.ID,
		&race.Name,
		&race.Location,
		&race.Date,
		&race.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrF1RaceNotFound
		}
		return nil, err
	}
	return &race, nil
}

func (r *postgresF1RaceRepository) ListUpcoming(ctx context.Context) ([]models.F1Race, error) {
	query := `
		SELECT id, name, location, date, status
		FROM f1_races
		WHERE status = $1
		ORDER BY date ASC NULLS LAST, id ASC`

	rows, err := r.db.QueryContext(ctx, query, models.RaceStatusUpcoming)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	races := make([]models.F1Race, 0)
	for rows.Next() {
		var race models.F1Race
		if err := rows.Scan(
			&race.ID,
			&race.Name,
			&race.Location,
			&race.Date,
			&race.Status,
		); err != nil {
			return nil, err
		}
		races = append(races, race)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return races, nil
}
