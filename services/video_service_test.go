package services

import (
	"context"
	"testing"

	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVideoService() VideoService {
	return NewVideoService(repositories.NewMemoryVideoRepository(), nil)
}

func TestVideoService_CreateDefaultsStatusToPending(t *testing.T) {
	svc := newVideoService()
	ctx := context.Background()

	video, err := svc.CreateVideo(ctx, CreateVideoInput{Title: "Highlights", FileName: "highlights.mp4"})
	require.NoError(t, err)
	assert.Equal(t, models.VideoStatusPending, video.Status)
}

func TestVideoService_CreateValidation(t *testing.T) {
	svc := newVideoService()
	ctx := context.Background()

	_, err := svc.CreateVideo(ctx, CreateVideoInput{FileName: "highlights.mp4"})
	assert.ErrorIs(t, err, ErrVideoTitleRequired)

	_, err = svc.CreateVideo(ctx, CreateVideoInput{Title: "Highlights"})
	assert.ErrorIs(t, err, ErrVideoFileNameRequired)

	bogus := models.VideoStatus("archived")
	_, err = svc.CreateVideo(ctx, CreateVideoInput{Title: "Highlights", FileName: "highlights.mp4", Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidVideoStatus)
}

func TestVideoService_UpdateRejectsInvalidStatus(t *testing.T) {
	svc := newVideoService()
	ctx := context.Background()

	video, err := svc.CreateVideo(ctx, CreateVideoInput{Title: "Highlights", FileName: "highlights.mp4"})
	require.NoError(t, err)

	_, err = svc.UpdateVideo(ctx, video.ID, models.VideoPatch{Status: models.Some(models.VideoStatus("archived"))})
	assert.ErrorIs(t, err, ErrInvalidVideoStatus)

	_, err = svc.UpdateVideo(ctx, video.ID, models.VideoPatch{Status: models.Null[models.VideoStatus]()})
	assert.ErrorIs(t, err, ErrInvalidVideoStatus, "status cannot be cleared")

	updated, err := svc.UpdateVideo(ctx, video.ID, models.VideoPatch{Status: models.Some(models.VideoStatusAnalyzing)})
	require.NoError(t, err)
	assert.Equal(t, models.VideoStatusAnalyzing, updated.Status)
}

func TestVideoService_DeleteVideo(t *testing.T) {
	svc := newVideoService()
	ctx := context.Background()

	video, err := svc.CreateVideo(ctx, CreateVideoInput{Title: "Highlights", FileName: "highlights.mp4"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteVideo(ctx, video.ID))

	err = svc.DeleteVideo(ctx, video.ID)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestVideoService_GetRecentVideosValidatesLimit(t *testing.T) {
	svc := newVideoService()

	_, err := svc.GetRecentVideos(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}
