package handlers

import (
	"net/http"
	"time"

	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/services"
)

type F1Handler struct {
	f1Service services.F1Service
}

func NewF1Handler(fs services.F1Service) *F1Handler {
	return &F1Handler{
		f1Service: fs,
	}
}

func (h *F1Handler) GetAllDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.f1Service.GetAllDrivers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, drivers, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type createDriverRequest struct {
	Name      string  `json:"name"`
	Team      string  `json:"team"`
	Number    *int    `json:"number"`
	AvatarURL *string `json:"avatarUrl"`
}

func (h *F1Handler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var req createDriverRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	input := services.CreateF1DriverInput{
		Name:      req.Name,
		Team:      req.Team,
		Number:    req.Number,
		AvatarURL: req.AvatarURL,
	}

	driver, err := h.f1Service.CreateDriver(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, driver, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *F1Handler) GetUpcomingRaces(w http.ResponseWriter, r *http.Request) {
	races, err := h.f1Service.GetUpcomingRaces(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, races, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type createRaceRequest struct {
	Name     string             `json:"name"`
	Location *string            `json:"location"`
	Date     *time.Time         `json:"date"`
	Status   *models.RaceStatus `json:"status"`
}

func (h *F1Handler) CreateRace(w http.ResponseWriter, r *http.Request) {
	var req createRaceRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	input := services.CreateF1RaceInput{
		Name:     req.Name,
		Location: req.Location,
		Date:     req.Date,
		Status:   req.Status,
	}

	race, err := h.f1Service.CreateRace(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, race, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *F1Handler) GetRacePredictions(w http.ResponseWriter, r *http.Request) {
	raceID, err := getIDFromURL(r, "raceID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	predictions, err := h.f1Service.GetRacePredictions(r.Context(), raceID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, predictions, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type createF1PredictionRequest struct {
	RaceID         int             `json:"raceId"`
	DriverID       int             `json:"driverId"`
	Position       *int            `json:"position"`
	WinProbability *float64        `json:"winProbability"`
	Factors        models.Document `json:"factors"`
}

func (h *F1Handler) CreatePrediction(w http.ResponseWriter, r *http.Request) {
	var req createF1PredictionRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	input := services.CreateF1PredictionInput{
		RaceID:         req.RaceID,
		DriverID:       req.DriverID,
		Position:       req.Position,
		WinProbability: req.WinProbability,
		Factors:        req.Factors,
	}

	prediction, err := h.f1Service.CreatePrediction(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, prediction, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
