package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/repositories"
	"github.com/Dosada05/scouting-system/storage"
)

var (
	ErrVideoTitleRequired    = errors.New("video title is required")
	ErrVideoFileNameRequired = errors.New("video file name is required")
	ErrInvalidVideoStatus    = errors.New("invalid video status")
	ErrVideoCreationFailed   = errors.New("failed to create video")
	ErrVideoUpdateFailed     = errors.New("failed to update video")
	ErrVideoDeleteFailed     = errors.New("failed to delete video")
	ErrVideoUploadFailed     = errors.New("failed to upload video file")
)

type VideoService interface {
	GetRecentVideos(ctx context.Context, limit int) ([]models.Video, error)
	GetVideosByPlayer(ctx context.Context, playerID int) ([]models.Video, error)
	GetVideoByID(ctx context.Context, id int) (*models.Video, error)
	CreateVideo(ctx context.Context, input CreateVideoInput) (*models.Video, error)
	UpdateVideo(ctx context.Context, id int, patch models.VideoPatch) (*models.Video, error)
	DeleteVideo(ctx context.Context, id int) error
	UploadVideoFile(ctx context.Context, videoID int, fileName, contentType string, size int64, file io.Reader) (*models.Video, error)
}

type CreateVideoInput struct {
	Title           string
	FileName        string
	FileSize        *int64
	Duration        *int
	PlayerID        *int
	UploadedByID    *int
	Status          *models.VideoStatus
	AnalysisResults models.Document
}

type videoService struct {
	videoRepo repositories.VideoRepository
	uploader  storage.FileUploader
}

func NewVideoService(videoRepo repositories.VideoRepository, uploader storage.FileUploader) VideoService {
	return &videoService{
		videoRepo: videoRepo,
		uploader:  uploader,
	}
}

func validVideoStatus(status models.VideoStatus) bool {
	switch status {
	case models.VideoStatusPending, models.VideoStatusAnalyzing, models.VideoStatusCompleted:
		return true
	}
	return false
}

func (s *videoService) GetRecentVideos(ctx context.Context, limit int) ([]models.Video, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}
	videos, err := s.videoRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent videos: %w", err)
	}
	if videos == nil {
		return []models.Video{}, nil
	}
	return videos, nil
}

func (s *videoService) GetVideosByPlayer(ctx context.Context, playerID int) ([]models.Video, error) {
	videos, err := s.videoRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get videos for player %d: %w", playerID, err)
	}
	if videos == nil {
		return []models.Video{}, nil
	}
	return videos, nil
}

func (s *videoService) GetVideoByID(ctx context.Context, id int) (*models.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to get video by id %d: %w", id, err)
	}
	return video, nil
}

func (s *videoService) CreateVideo(ctx context.Context, input CreateVideoInput) (*models.Video, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrVideoTitleRequired
	}
	fileName := strings.TrimSpace(input.FileName)
	if fileName == "" {
		return nil, ErrVideoFileNameRequired
	}

	status := models.VideoStatusPending
	if input.Status != nil {
		if !validVideoStatus(*input.Status) {
			return nil, ErrInvalidVideoStatus
		}
		status = *input.Status
	}

	video := &models.Video{
		Title:           title,
		FileName:        fileName,
		FileSize:        input.FileSize,
		Duration:        input.Duration,
		PlayerID:        input.PlayerID,
		UploadedByID:    input.UploadedByID,
		Status:          status,
		AnalysisResults: input.AnalysisResults,
	}

	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVideoCreationFailed, err)
	}
	return video, nil
}

func (s *videoService) UpdateVideo(ctx context.Context, id int, patch models.VideoPatch) (*models.Video, error) {
	if patch.Title.Set && (patch.Title.Value == nil || strings.TrimSpace(*patch.Title.Value) == "") {
		return nil, ErrVideoTitleRequired
	}
	if patch.FileName.Set && (patch.FileName.Value == nil || strings.TrimSpace(*patch.FileName.Value) == "") {
		return nil, ErrVideoFileNameRequired
	}
	if patch.Status.Set {
		if patch.Status.Value == nil || !validVideoStatus(*patch.Status.Value) {
			return nil, ErrInvalidVideoStatus
		}
	}

	video, err := s.videoRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("%w (id: %d): %w", ErrVideoUpdateFailed, id, err)
	}
	return video, nil
}

func (s *videoService) DeleteVideo(ctx context.Context, id int) error {
	deleted, err := s.videoRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w (id: %d): %w", ErrVideoDeleteFailed, id, err)
	}
	if !deleted {
		return ErrVideoNotFound
	}
	return nil
}

func (s *videoService) UploadVideoFile(ctx context.Context, videoID int, fileName, contentType string, size int64, file io.Reader) (*models.Video, error) {
	if s.uploader == nil {
		return nil, ErrUploaderNotConfigured
	}

	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to get video by id %d: %w", videoID, err)
	}

	key := fmt.Sprintf("videos/%d/%s", videoID, fileName)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("%w (video: %d): %w", ErrVideoUploadFailed, videoID, err)
	}

	patch := models.VideoPatch{
		FileName: models.Some(result.Key),
		FileSize: models.Some(size),
	}
	video, err := s.videoRepo.Update(ctx, videoID, patch)
	if err != nil {
		return nil, fmt.Errorf("%w (video: %d): %w", ErrVideoUpdateFailed, videoID, err)
	}
	return video, nil
}
