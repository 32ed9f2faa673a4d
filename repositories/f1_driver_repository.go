package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/scouting-system/models"
)

var ErrF1DriverNotFound = errors.New("f1 driver not found")

type F1DriverRepository interface {
	Create(ctx context.Context, driver *models.F1Driver) error
	GetByID(ctx context.Context, id int) (*models.F1Driver, error)
	GetAll(ctx context.Context) ([]models.F1Driver, error)
}

type postgresF1DriverRepository struct {
	db *sql.DB
}

func NewPostgresF1DriverRepository(db *sql.DB) F1DriverRepository {
	return &postgresF1DriverRepository{db: db}
}

func (r *postgresF1DriverRepository) Create(ctx context.Context, driver *models.F1Driver) error {
	query := `
		INSERT INTO f1_drivers (name, team, number, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		driver.Name,
		driver.Team,
		driver.Number,
		driver.AvatarURL,
	).Scan(&driver.ID)
}

func (r *postgresF1DriverRepository) GetByID(ctx context.Context, id int) (*models.F1Driver, error) {
	query := `SELECT id, name, team, number, avatar_url FROM f1_drivers WHERE id = $1`

	var driver models.F1Driver
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&driver.ID,
		&driver.Name,
		&driver.Team,
		&driver.Number,
		&driver.AvatarURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrF1DriverNotFound
		}
		return nil, err
	}
	return &driver, nil
}

func (r *postgresF1DriverRepository) GetAll(ctx context.Context) ([]models.F1Driver, error) {
	query := `SELECT id, name, team, number, avatar_url FROM f1_drivers ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]models.F1Driver, 0)
	for rows.Next() {
		var driver models.F1Driver
		if err := rows.Scan(
			&driver.ID,
			&driver.Name,
			&driver.Team,
			&driver.Number,
			&driver.AvatarURL,
		); err != nil {
			return nil, err
		}
		drivers = append(drivers, driver)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return drivers, nil
}
