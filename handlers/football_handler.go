package handlers

import (
	"net/http"
	"time"

	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/services"
)

type FootballHandler struct {
	footballService services.FootballService
}

func NewFootballHandler(fs services.FootballService) *FootballHandler {
	return &FootballHandler{
		footballService: fs,
	}
}

func (h *FootballHandler) GetAllTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.footballService.GetAllTeams(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, teams, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type createTeamRequest struct {
	Name    string  `json:"name"`
	League  *string `json:"league"`
	LogoURL *string `json:"logoUrl"`
}

func (h *FootballHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req createTeamRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	input := services.CreateFootballTeamInput{
		Name:    req.Name,
		League:  req.League,
		LogoURL: req.LogoURL,
	}

	team, err := h.footballService.CreateTeam(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, team, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *FootballHandler) GetUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.footballService.GetUpcomingMatches(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, matches, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type createMatchRequest struct {
	HomeTeamID int                 `json:"homeTeamId"`
	AwayTeamID int                 `json:"awayTeamId"`
	Date       *time.Time          `json:"date"`
	Status     *models.MatchStatus `json:"status"`
	HomeScore  *int                `json:"homeScore"`
	AwayScore  *int                `json:"awayScore"`
}

func (h *FootballHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req createMatchRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	input := services.CreateFootballMatchInput{
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		Date:       req.Date,
		Status:     req.Status,
		HomeScore:  req.HomeScore,
		AwayScore:  req.AwayScore,
	}

	match, err := h.footballService.CreateMatch(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, match, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *FootballHandler) GetMatchPrediction(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	prediction, err := h.footballService.GetMatchPrediction(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, prediction, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type createFootballPredictionRequest struct {
	MatchID            int             `json:"matchId"`
	PredictedHomeScore *int            `json:"predictedHomeScore"`
	PredictedAwayScore *int            `json:"predictedAwayScore"`
	WinProbability     *float64        `json:"winProbability"`
	DrawProbability    *float64        `json:"drawProbability"`
	LossProbability    *float64        `json:"lossProbability"`
	Confidence         *int            `json:"confidence"`
	Stats              models.Document `json:"stats"`
}

func (h *FootballHandler) CreatePrediction(w http.ResponseWriter, r *http.Request) {
	var req createFootballPredictionRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	input := services.CreateFootballPredictionInput{
		MatchID:            req.MatchID,
		PredictedHomeScore: req.PredictedHomeScore,
		PredictedAwayScore: req.PredictedAwayScore,
		WinProbability:     req.WinProbability,
		DrawProbability:    req.DrawProbability,
		LossProbability:    req.LossProbability,
		Confidence:         req.Confidence,
		Stats:              req.Stats,
	}

	prediction, err := h.footballService.CreatePrediction(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, prediction, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *FootballHandler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")

	stats, err := h.footballService.GetTeamStats(r.Context(), league)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, stats, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *FootballHandler) GetTeamStatByTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stat, err := h.footballService.GetTeamStatByTeam(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, stat, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type createTeamStatRequest struct {
	// TeamID is accepted in the body for client convenience but the URL
	// parameter is authoritative.
	TeamID         int             `json:"teamId"`
	LeaguePosition *int            `json:"leaguePosition"`
	WinProbability *float64        `json:"winProbability"`
	Form           *string         `json:"form"`
	GoalDifference *int            `json:"goalDifference"`
	Points         *int            `json:"points"`
	RecentResults  models.Document `json:"recentResults"`
}

func (h *FootballHandler) CreateTeamStat(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var req createTeamStatRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	input := services.CreateTeamStatInput{
		LeaguePosition: req.LeaguePosition,
		WinProbability: req.WinProbability,
		Form:           req.Form,
		GoalDifference: req.GoalDifference,
		Points:         req.Points,
		RecentResults:  req.RecentResults,
	}

	stat, err := h.footballService.CreateTeamStat(r.Context(), teamID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, stat, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
