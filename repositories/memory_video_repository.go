package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/scouting-system/models"
)

type MemoryVideoRepository struct {
	mu     sync.RWMutex
	videos map[int]models.Video
	nextID int
}

func NewMemoryVideoRepository() *MemoryVideoRepository {
	return &MemoryVideoRepository{
		videos: make(map[int]models.Video),
		nextID: 1,
	}
}

func cloneVideo(v models.Video) models.Video {
	v.FileSize = clonePtr(v.FileSize)
	v.Duration = clonePtr(v.Duration)
	v.PlayerID = clonePtr(v.PlayerID)
	v.UploadedByID = clonePtr(v.UploadedByID)
	v.AnalysisResults = cloneDoc(v.AnalysisResults)
	return v
}

func (r *MemoryVideoRepository) Create(_ context.Context, video *models.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	video.ID = r.nextID
	r.nextID++
	video.CreatedAt = time.Now().UTC()
	r.videos[video.ID] = cloneVideo(*video)
	return nil
}

func (r *MemoryVideoRepository) GetByID(_ context.Context, id int) (*models.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	video, ok := r.videos[id]
	if !ok {
		return nil, ErrVideoNotFound
	}
	video = cloneVideo(video)
	return &video, nil
}

func (r *MemoryVideoRepository) ListByPlayer(_ context.Context, playerID int) ([]models.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	videos := make([]models.Video, 0)
	for _, video := range r.videos {
		if video.PlayerID != nil && *video.PlayerID == playerID {
			videos = append(videos, cloneVideo(video))
		}
	}
	sortVideosNewestFirst(videos)
	return videos, nil
}

func (r *MemoryVideoRepository) ListRecent(_ context.Context, limit int) ([]models.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	videos := make([]models.Video, 0, len(r.videos))
	for _, video := range r.videos {
		videos = append(videos, cloneVideo(video))
	}
	sortVideosNewestFirst(videos)
	if limit >= 0 && limit < len(videos) {
		videos = videos[:limit]
	}
	return videos, nil
}

func sortVideosNewestFirst(videos []models.Video) {
	sort.Slice(videos, func(i, j int) bool {
		if !videos[i].CreatedAt.Equal(videos[j].CreatedAt) {
			return videos[i].CreatedAt.After(videos[j].CreatedAt)
		}
		return videos[i].ID > videos[j].ID
	})
}

func (r *MemoryVideoRepository) Update(_ context.Context, id int, patch models.VideoPatch) (*models.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	video, ok := r.videos[id]
	if !ok {
		return nil, ErrVideoNotFound
	}

	if patch.Title.Set && patch.Title.Value != nil {
		video.Title = *patch.Title.Value
	}
	if patch.FileName.Set && patch.FileName.Value != nil {
		video.FileName = *patch.FileName.Value
	}
	if patch.Status.Set && patch.Status.Value != nil {
		video.Status = *patch.Status.Value
	}
	applyOptional(&video.FileSize, patch.FileSize)
	applyOptional(&video.Duration, patch.Duration)
	applyOptional(&video.PlayerID, patch.PlayerID)
	applyOptional(&video.UploadedByID, patch.UploadedByID)
	if patch.AnalysisResults.Set {
		if patch.AnalysisResults.Value == nil {
			video.AnalysisResults = nil
		} else {
			video.AnalysisResults = cloneDoc(*patch.AnalysisResults.Value)
		}
	}

	r.videos[id] = cloneVideo(video)
	video = cloneVideo(video)
	return &video, nil
}

func (r *MemoryVideoRepository) Delete(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.videos[id]; !ok {
		return false, nil
	}
	delete(r.videos, id)
	return true, nil
}
