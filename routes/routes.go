package routes

import (
	"github.com/Dosada05/scouting-system/handlers"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	playerHandler *handlers.PlayerHandler,
	videoHandler *handlers.VideoHandler,
	f1Handler *handlers.F1Handler,
	footballHandler *handlers.FootballHandler,
	userHandler *handlers.UserHandler,
	dashboardHandler *handlers.DashboardHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Route("/api", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", playerHandler.GetAllPlayers)
			r.Post("/", playerHandler.CreatePlayer)
			r.Get("/top", playerHandler.GetTopPlayers)
			r.Get("/{playerID}", playerHandler.GetPlayerByID)
			r.Patch("/{playerID}", playerHandler.UpdatePlayer)
			r.Post("/{playerID}/avatar", playerHandler.UploadAvatar)
		})

		r.Route("/player-metrics", func(r chi.Router) {
			r.Post("/", playerHandler.CreateMetrics)
			r.Patch("/{metricsID}", playerHandler.UpdateMetrics)
		})

		r.Route("/videos", func(r chi.Router) {
			r.Get("/recent", videoHandler.GetRecentVideos)
			r.Get("/player/{playerID}", videoHandler.GetVideosByPlayer)
			r.Post("/", videoHandler.CreateVideo)
			r.Patch("/{videoID}", videoHandler.UpdateVideo)
			r.Delete("/{videoID}", videoHandler.DeleteVideo)
			r.Post("/{videoID}/file", videoHandler.UploadVideoFile)
		})

		r.Route("/f1", func(r chi.Router) {
			r.Get("/drivers", f1Handler.GetAllDrivers)
			r.Post("/drivers", f1Handler.CreateDriver)
			r.Get("/races/upcoming", f1Handler.GetUpcomingRaces)
			r.Post("/races", f1Handler.CreateRace)
			r.Get("/predictions/{raceID}", f1Handler.GetRacePredictions)
			r.Post("/predictions", f1Handler.CreatePrediction)
		})

		r.Route("/football", func(r chi.Router) {
			r.Get("/teams", footballHandler.GetAllTeams)
			r.Post("/teams", footballHandler.CreateTeam)
			r.Get("/matches/upcoming", footballHandler.GetUpcomingMatches)
			r.Post("/matches", footballHandler.CreateMatch)
			r.Get("/predictions/{matchID}", footballHandler.GetMatchPrediction)
			r.Post("/predictions", footballHandler.CreatePrediction)
			r.Get("/team-stats", footballHandler.GetTeamStats)
			r.Get("/team-stats/{teamID}", footballHandler.GetTeamStatByTeam)
			r.Post("/team-stats/{teamID}", footballHandler.CreateTeamStat)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.Register)
			r.Get("/{userID}", userHandler.GetUserByID)
		})

		r.Get("/dashboard/summary", dashboardHandler.GetSummary)
	})

	router.Route("/ws", func(r chi.Router) {
		r.Get("/races/{raceID}", webSocketHandler.SubscribeRace)
		r.Get("/matches/{matchID}", webSocketHandler.SubscribeMatch)
	})
}
