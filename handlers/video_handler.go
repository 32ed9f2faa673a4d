package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/services"
)

const defaultRecentVideosLimit = 5

type VideoHandler struct {
	videoService services.VideoService
}

func NewVideoHandler(vs services.VideoService) *VideoHandler {
	return &VideoHandler{
		videoService: vs,
	}
}

func (h *VideoHandler) GetRecentVideos(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimitQuery(r, defaultRecentVideosLimit)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	videos, err := h.videoService.GetRecentVideos(r.Context(), limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, videos, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *VideoHandler) GetVideosByPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	videos, err := h.videoService.GetVideosByPlayer(r.Context(), playerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, videos, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type createVideoRequest struct {
	Title           string              `json:"title"`
	FileName        string              `json:"fileName"`
	FileSize        *int64              `json:"fileSize"`
	Duration        *int                `json:"duration"`
	PlayerID        *int                `json:"playerId"`
	UploadedByID    *int                `json:"uploadedById"`
	Status          *models.VideoStatus `json:"status"`
	AnalysisResults models.Document     `json:"analysisResults"`
}

func (h *VideoHandler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	var req createVideoRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	input := services.CreateVideoInput{
		Title:           req.Title,
		FileName:        req.FileName,
		FileSize:        req.FileSize,
		Duration:        req.Duration,
		PlayerID:        req.PlayerID,
		UploadedByID:    req.UploadedByID,
		Status:          req.Status,
		AnalysisResults: req.AnalysisResults,
	}

	video, err := h.videoService.CreateVideo(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, video, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *VideoHandler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	videoID, err := getIDFromURL(r, "videoID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var patch models.VideoPatch
	if err := readJSON(w, r, &patch); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	video, err := h.videoService.UpdateVideo(r.Context(), videoID, patch)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, video, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *VideoHandler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	videoID, err := getIDFromURL(r, "videoID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.videoService.DeleteVideo(r.Context(), videoID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *VideoHandler) UploadVideoFile(w http.ResponseWriter, r *http.Request) {
	videoID, err := getIDFromURL(r, "videoID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(512 << 20); err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to parse multipart form: %w", err))
		return
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to get video file from form: %w", err))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		badRequestResponse(w, r, errors.New("content-type header is required for video"))
		return
	}

	video, err := h.videoService.UploadVideoFile(r.Context(), videoID, header.Filename, contentType, header.Size, file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, video, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
