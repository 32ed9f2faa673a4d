package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/scouting-system/handlers"
	"github.com/Dosada05/scouting-system/live"
	"github.com/Dosada05/scouting-system/repositories"
	"github.com/Dosada05/scouting-system/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	repos := repositories.NewMemoryRepositories()

	playerService := services.NewPlayerService(repos.Players, repos.PlayerMetrics, nil)
	videoService := services.NewVideoService(repos.Videos, nil)
	f1Service := services.NewF1Service(repos.F1Drivers, repos.F1Races, repos.F1Predictions, nil)
	footballService := services.NewFootballService(repos.FootballTeams, repos.FootballMatches, repos.FootballPredictions, repos.FootballTeamStats, nil)
	userService := services.NewUserService(repos.Users)
	dashboardService := services.NewDashboardService(playerService, videoService, f1Service, footballService)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		handlers.NewPlayerHandler(playerService),
		handlers.NewVideoHandler(videoService),
		handlers.NewF1Handler(f1Service),
		handlers.NewFootballHandler(footballService),
		handlers.NewUserHandler(userService),
		handlers.NewDashboardHandler(dashboardService),
		handlers.NewWebSocketHandler(live.NewHub()),
	)
	return router
}

func doRequest(t *testing.T, router *chi.Mux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeObject(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestPlayersEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/players", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String(), "an empty collection is a bare array")

	rec = doRequest(t, router, http.MethodPost, "/api/players", `{"name":"Lionel Messi","team":"Inter Miami","recruitmentMatch":99}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeObject(t, rec)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "Inter Miami", created["team"])

	// Explicit null clears the field; absent fields are untouched.
	rec = doRequest(t, router, http.MethodPatch, "/api/players/1", `{"team":null,"age":36}`)
	require.Equal(t, http.StatusOK, rec.Code)
	patched := decodeObject(t, rec)
	assert.Equal(t, "Lionel Messi", patched["name"])
	assert.Nil(t, patched["team"])
	assert.Equal(t, float64(36), patched["age"])

	rec = doRequest(t, router, http.MethodGet, "/api/players/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeObject(t, rec), "error")

	rec = doRequest(t, router, http.MethodPost, "/api/players", `{"name":"X","unknownField":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/players/top?limit=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlayerMetricsConflict(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/players", `{"name":"Erling Haaland"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/player-metrics", `{"playerId":1,"pace":89.0}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/player-metrics", `{"playerId":1,"pace":90.0}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decodeObject(t, rec), "error")
}

func TestVideoDeleteEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/videos", `{"title":"Highlights","fileName":"highlights.mp4"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/api/videos/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/api/videos/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTeamStatsPathParameterWins(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/football/teams", `{"name":"Al Hilal","league":"Roshn Saudi League"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Body teamId diverges from the path on purpose.
	rec = doRequest(t, router, http.MethodPost, "/api/football/team-stats/1", `{"teamId":9,"leaguePosition":1,"points":50}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(1), decodeObject(t, rec)["teamId"])

	rec = doRequest(t, router, http.MethodPost, "/api/football/team-stats/1", `{"points":40}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/football/team-stats?league=Roshn+Saudi+League", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Len(t, stats, 1)
}

func TestFootballPredictionPerMatch(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/football/predictions", `{"matchId":3,"confidence":80}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/football/predictions", `{"matchId":3,"confidence":60}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/football/predictions/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(80), decodeObject(t, rec)["confidence"])

	rec = doRequest(t, router, http.MethodGet, "/api/football/predictions/4", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUsersEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/users", `{"username":"demo","password":"password"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeObject(t, rec)
	assert.Equal(t, "scout", body["role"])
	assert.NotContains(t, body, "passwordHash", "hash never leaves the API")

	rec = doRequest(t, router, http.MethodPost, "/api/users", `{"username":"demo","password":"password"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/users", `{"username":"short","password":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardSummary(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/dashboard/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	summary := decodeObject(t, rec)
	for _, section := range []string{"topPlayers", "recentVideos", "upcomingRaces", "upcomingMatches"} {
		value, ok := summary[section]
		require.True(t, ok, "summary includes %s", section)
		assert.IsType(t, []any{}, value, "section %s is an array, not null", section)
	}
}
