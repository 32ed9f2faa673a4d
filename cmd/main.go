package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/scouting-system/config"
	"github.com/Dosada05/scouting-system/db"
	"github.com/Dosada05/scouting-system/handlers"
	"github.com/Dosada05/scouting-system/live"
	"github.com/Dosada05/scouting-system/repositories"
	api "github.com/Dosada05/scouting-system/routes"
	"github.com/Dosada05/scouting-system/seed"
	"github.com/Dosada05/scouting-system/services"
	"github.com/Dosada05/scouting-system/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Выбор бэкенда хранения: postgres при наличии DATABASE_URL, иначе in-memory
	var repos *repositories.Repositories
	usingMemory := cfg.DatabaseURL == ""
	if usingMemory {
		repos = repositories.NewMemoryRepositories()
		logger.Info("using in-memory storage backend")
	} else {
		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			logger.Error("failed to connect to database", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := dbConn.Close(); err != nil {
				logger.Error("failed to close database connection", slog.Any("error", err))
			} else {
				logger.Info("database connection closed")
			}
		}()
		repos = repositories.NewPostgresRepositories(dbConn)
		logger.Info("database connection established")
	}

	// Инициализация загрузчика файлов
	var uploader storage.FileUploader
	if cfg.R2Configured() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		uploader, err = storage.NewLocalUploader(cfg.UploadDir, cfg.UploadBaseURL)
		if err != nil {
			logger.Error("failed to initialize local uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("local file uploader initialized", slog.String("dir", cfg.UploadDir))
	}

	// Инициализация WebSocket Hub
	wsHub := live.NewHub()
	go wsHub.Run()
	logger.Info("WebSocket Hub started")

	// Инициализация сервисов
	userService := services.NewUserService(repos.Users)
	playerService := services.NewPlayerService(repos.Players, repos.PlayerMetrics, uploader)
	videoService := services.NewVideoService(repos.Videos, uploader)
	f1Service := services.NewF1Service(repos.F1Drivers, repos.F1Races, repos.F1Predictions, wsHub)
	footballService := services.NewFootballService(
		repos.FootballTeams,
		repos.FootballMatches,
		repos.FootballPredictions,
		repos.FootballTeamStats,
		wsHub,
	)
	dashboardService := services.NewDashboardService(playerService, videoService, f1Service, footballService)
	logger.Info("Services initialized")

	// Загрузка демо-данных (только для in-memory бэкенда)
	if usingMemory && cfg.DemoSeed {
		if err := seed.Demo(context.Background(), userService, playerService, videoService, f1Service, footballService); err != nil {
			logger.Error("failed to seed demo data", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo data seeded")
	}

	// Инициализация обработчиков HTTP
	playerHandler := handlers.NewPlayerHandler(playerService)
	videoHandler := handlers.NewVideoHandler(videoService)
	f1Handler := handlers.NewF1Handler(f1Service)
	footballHandler := handlers.NewFootballHandler(footballService)
	userHandler := handlers.NewUserHandler(userService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub)
	logger.Info("HTTP handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		playerHandler,
		videoHandler,
		f1Handler,
		footballHandler,
		userHandler,
		dashboardHandler,
		webSocketHandler,
	)
	logger.Info("Routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		} else {
			logger.Info("server stopped gracefully")
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
