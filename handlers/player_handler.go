package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/services"
)

const defaultTopPlayersLimit = 5

type PlayerHandler struct {
	playerService services.PlayerService
}

func NewPlayerHandler(ps services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: ps,
	}
}

func (h *PlayerHandler) GetAllPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.GetAllPlayers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, players, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PlayerHandler) GetTopPlayers(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimitQuery(r, defaultTopPlayersLimit)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	players, err := h.playerService.GetTopPlayers(r.Context(), limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, players, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PlayerHandler) GetPlayerByID(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.GetPlayerByID(r.Context(), playerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, player, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type createPlayerRequest struct {
	Name             string  `json:"name"`
	Age              *int    `json:"age"`
	Team             *string `json:"team"`
	Position         *string `json:"position"`
	Description      *string `json:"description"`
	AvatarURL        *string `json:"avatarUrl"`
	RecruitmentMatch *int    `json:"recruitmentMatch"`
}

func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req createPlayerRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	input := services.CreatePlayerInput{
		Name:             req.Name,
		Age:              req.Age,
		Team:             req.Team,
		Position:         req.Position,
		Description:      req.Description,
		AvatarURL:        req.AvatarURL,
		RecruitmentMatch: req.RecruitmentMatch,
	}

	player, err := h.playerService.CreatePlayer(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, player, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PlayerHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var patch models.PlayerPatch
	if err := readJSON(w, r, &patch); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.UpdatePlayer(r.Context(), playerID, patch)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, player, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PlayerHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to parse multipart form: %w", err))
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to get avatar file from form: %w", err))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		badRequestResponse(w, r, errors.New("content-type header is required for avatar"))
		return
	}

	player, err := h.playerService.UploadAvatar(r.Context(), playerID, header.Filename, contentType, file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, player, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type createMetricsRequest struct {
	PlayerID    int      `json:"playerId"`
	Pace        *float64 `json:"pace"`
	Technique   *float64 `json:"technique"`
	Finishing   *float64 `json:"finishing"`
	Passing     *float64 `json:"passing"`
	Vision      *float64 `json:"vision"`
	Stamina     *float64 `json:"stamina"`
	Tackling    *float64 `json:"tackling"`
	Strength    *float64 `json:"strength"`
	Positioning *float64 `json:"positioning"`
	Agility     *float64 `json:"agility"`
	BallControl *float64 `json:"ballControl"`
	Speed       *float64 `json:"speed"`
}

func (h *PlayerHandler) CreateMetrics(w http.ResponseWriter, r *http.Request) {
	var req createMetricsRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	input := services.CreatePlayerMetricsInput{
		PlayerID:    req.PlayerID,
		Pace:        req.Pace,
		Technique:   req.Technique,
		Finishing:   req.Finishing,
		Passing:     req.Passing,
		Vision:      req.Vision,
		Stamina:     req.Stamina,
		Tackling:    req.Tackling,
		Strength:    req.Strength,
		Positioning: req.Positioning,
		Agility:     req.Agility,
		BallControl: req.BallControl,
		Speed:       req.Speed,
	}

	metrics, err := h.playerService.CreateMetrics(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, metrics, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PlayerHandler) UpdateMetrics(w http.ResponseWriter, r *http.Request) {
	metricsID, err := getIDFromURL(r, "metricsID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var patch models.PlayerMetricsPatch
	if err := readJSON(w, r, &patch); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	metrics, err := h.playerService.UpdateMetrics(r.Context(), metricsID, patch)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, metrics, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
