package repositories

import (
	"context"
	"testing"

	"github.com/Dosada05/scouting-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryVideoRepository_ListRecentNewestFirst(t *testing.T) {
	repo := NewMemoryVideoRepository()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		video := &models.Video{Title: "clip", FileName: "clip.mp4", Status: models.VideoStatusPending}
		require.NoError(t, repo.Create(ctx, video))
	}

	videos, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, videos, 3)

	// Timestamps can collide within a test run; the id tie-break keeps the
	// newest insert first either way.
	assert.Equal(t, 4, videos[0].ID)
	assert.Equal(t, 3, videos[1].ID)
	assert.Equal(t, 2, videos[2].ID)
}

func TestMemoryVideoRepository_ListByPlayer(t *testing.T) {
	repo := NewMemoryVideoRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Video{Title: "a", FileName: "a.mp4", PlayerID: ptrOf(1), Status: models.VideoStatusPending}))
	require.NoError(t, repo.Create(ctx, &models.Video{Title: "b", FileName: "b.mp4", PlayerID: ptrOf(2), Status: models.VideoStatusPending}))
	require.NoError(t, repo.Create(ctx, &models.Video{Title: "c", FileName: "c.mp4", PlayerID: ptrOf(1), Status: models.VideoStatusPending}))
	require.NoError(t, repo.Create(ctx, &models.Video{Title: "d", FileName: "d.mp4", Status: models.VideoStatusPending}))

	videos, err := repo.ListByPlayer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, 3, videos[0].ID)
	assert.Equal(t, 1, videos[1].ID)
}

func TestMemoryVideoRepository_UpdatePatchesDocument(t *testing.T) {
	repo := NewMemoryVideoRepository()
	ctx := context.Background()

	video := &models.Video{Title: "clip", FileName: "clip.mp4", Status: models.VideoStatusPending}
	require.NoError(t, repo.Create(ctx, video))

	results := models.Document(`{"speed":90}`)
	patch := models.VideoPatch{
		Status:          models.Some(models.VideoStatusCompleted),
		AnalysisResults: models.Some(results),
	}
	updated, err := repo.Update(ctx, video.ID, patch)
	require.NoError(t, err)

	assert.Equal(t, models.VideoStatusCompleted, updated.Status)
	assert.JSONEq(t, `{"speed":90}`, string(updated.AnalysisResults))

	// Explicit null clears the document.
	cleared, err := repo.Update(ctx, video.ID, models.VideoPatch{AnalysisResults: models.Null[models.Document]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.AnalysisResults)
}

func TestMemoryVideoRepository_DeleteIsIdempotent(t *testing.T) {
	repo := NewMemoryVideoRepository()
	ctx := context.Background()

	video := &models.Video{Title: "clip", FileName: "clip.mp4", Status: models.VideoStatusPending}
	require.NoError(t, repo.Create(ctx, video))

	deleted, err := repo.Delete(ctx, video.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, video.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.GetByID(ctx, video.ID)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestMemoryVideoRepository_DeletedIDIsNeverReused(t *testing.T) {
	repo := NewMemoryVideoRepository()
	ctx := context.Background()

	first := &models.Video{Title: "a", FileName: "a.mp4", Status: models.VideoStatusPending}
	require.NoError(t, repo.Create(ctx, first))

	_, err := repo.Delete(ctx, first.ID)
	require.NoError(t, err)

	second := &models.Video{Title: "b", FileName: "b.mp4", Status: models.VideoStatusPending}
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, 2, second.ID)
}
