package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	ServerPort int

	// DatabaseURL пустой — сервис работает на in-memory хранилище.
	DatabaseURL string

	// DemoSeed включает загрузку демо-данных (только для in-memory).
	DemoSeed bool

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string

	// Локальное файловое хранилище, если R2 не настроен.
	UploadDir     string
	UploadBaseURL string
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	demoSeed := true
	if seedStr := os.Getenv("DEMO_SEED"); seedStr != "" {
		demoSeed, err = strconv.ParseBool(seedStr)
		if err != nil {
			return nil, fmt.Errorf("invalid DEMO_SEED environment variable: %w", err)
		}
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	uploadBaseURL := os.Getenv("UPLOAD_BASE_URL")
	if uploadBaseURL == "" {
		uploadBaseURL = fmt.Sprintf("http://localhost:%d/uploads", port)
	}

	cfg := &Config{
		ServerPort:        port,
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DemoSeed:          demoSeed,
		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
		UploadDir:         uploadDir,
		UploadBaseURL:     uploadBaseURL,
	}

	return cfg, nil
}

// R2Configured сообщает, заданы ли все параметры Cloudflare R2.
func (c *Config) R2Configured() bool {
	return c.R2AccountID != "" &&
		c.R2AccessKeyID != "" &&
		c.R2SecretAccessKey != "" &&
		c.R2BucketName != "" &&
		c.R2PublicBaseURL != ""
}
