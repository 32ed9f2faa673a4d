package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/scouting-system/models"
)

var ErrVideoNotFound = errors.New("video not found")

type VideoRepository interface {
	Create(ctx context.Context, video *models.Video) error
	GetByID(ctx context.Context, id int) (*models.Video, error)
	ListByPlayer(ctx context.Context, playerID int) ([]models.Video, error)
	// ListRecent returns up to limit videos ordered by creation time
	// descending; equal timestamps are broken by id descending so the
	// ordering stays reproducible.
	ListRecent(ctx context.Context, limit int) ([]models.Video, error)
	Update(ctx context.Context, id int, patch models.VideoPatch) (*models.Video, error)
	// Delete reports whether a video existed and was removed. Deleting an
	// unknown id is not an error.
	Delete(ctx context.Context, id int) (bool, error)
}

const videoColumns = `id, title, file_name, file_size, duration, player_id, uploaded_by_id, status, analysis_results, created_at`

type postgresVideoRepository struct {
	db *sql.DB
}

func NewPostgresVideoRepository(db *sql.DB) VideoRepository {
	return &postgresVideoRepository{db: db}
}

func (r *postgresVideoRepository) Create(ctx context.Context, video *models.Video) error {
	query := `
		INSERT INTO videos (title, file_name, file_size, duration, player_id, uploaded_by_id, status, analysis_results)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		video.Title,
		video.FileName,
		video.FileSize,
		video.Duration,
		video.PlayerID,
		video.UploadedByID,
		video.Status,
		video.AnalysisResults,
	).Scan(&video.ID, &video.CreatedAt)
}

func (r *postgresVideoRepository) GetByID(ctx context.Context, id int) (*models.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`
	return r.scanVideo(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresVideoRepository) ListByPlayer(ctx context.Context, playerID int) ([]models.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE player_id = $1 ORDER BY id ASC`
	return r.queryVideos(ctx, query, playerID)
}

func (r *postgresVideoRepository) ListRecent(ctx context.Context, limit int) ([]models.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos ORDER BY created_at DESC, id DESC LIMIT $1`
	return r.queryVideos(ctx, query, limit)
}

func (r *postgresVideoRepository) Update(ctx context.Context, id int, patch models.VideoPatch) (*models.Video, error) {
	var b updateBuilder
	if patch.Title.Set && patch.Title.Value != nil {
		b.set("title", *patch.Title.Value)
	}
	if patch.FileName.Set && patch.FileName.Value != nil {
		b.set("file_name", *patch.FileName.Value)
	}
	setOptional(&b, "file_size", patch.FileSize)
	setOptional(&b, "duration", patch.Duration)
	setOptional(&b, "player_id", patch.PlayerID)
	setOptional(&b, "uploaded_by_id", patch.UploadedByID)
	setOptional(&b, "status", patch.Status)
	setOptional(&b, "analysis_results", patch.AnalysisResults)

	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.build("videos", videoColumns, id)
	return r.scanVideo(r.db.QueryRowContext(ctx, query, args...))
}

func (r *postgresVideoRepository) Delete(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *postgresVideoRepository) queryVideos(ctx context.Context, query string, args ...interface{}) ([]models.Video, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := make([]models.Video, 0)
	for rows.Next() {
		var video models.Video
		if err := rows.Scan(
			&video.ID,
			&video.Title,
			&video.FileName,
			&video.FileSize,
			&video.Duration,
			&video.PlayerID,
			&video.UploadedByID,
			&video.Status,
			&video.AnalysisResults,
			&video.CreatedAt,
		); err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *postgresVideoRepository) scanVideo(row *sql.Row) (*models.Video, error) {
	var video models.Video
	err := row.Scan(
		&video.ID,
		&video.Title,
		&video.FileName,
		&video.FileSize,
		&video.Duration,
		&video.PlayerID,
		&video.UploadedByID,
		&video.Status,
		&video.AnalysisResults,
		&video.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return &video, nil
}
