package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config uygulama konfigürasyonu
type Config struct {
	GeminiAPIKey       string
	ModelPath          string
	FeatureColumnsPath string
	DatasetPath        string

	HTTPAddr      string
	TelegramToken string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DatabaseURL string

	SessionTTL time.Duration
}

// Load .env (varsa) ve ortam değişkenlerinden konfigürasyonu yükler.
// Zorunlu bir değer eksikse hata döner; process açılışta kapanmalı.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		ModelPath:          getEnv("MODEL_PATH", "model/price_model.json"),
		FeatureColumnsPath: getEnv("FEATURE_COLUMNS_PATH", "model/feature_columns.json"),
		DatasetPath:        getEnv("DATASET_PATH", "data/products.csv"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":5000"),
		TelegramToken:      os.Getenv("TELEGRAM_BOT_TOKEN"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
	}

	if raw := os.Getenv("REDIS_DB"); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("REDIS_DB geçersiz: %v", err)
		}
		config.RedisDB = db
	}

	config.DatabaseURL = os.Getenv("DATABASE_URL")

	ttl, err := parseTTL(os.Getenv("SESSION_TTL_MINUTES"))
	if err != nil {
		return nil, err
	}
	config.SessionTTL = ttl

	// Validasyon
	if config.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable boş")
	}
	if config.ModelPath == "" {
		return nil, fmt.Errorf("MODEL_PATH boş olamaz")
	}
	if config.FeatureColumnsPath == "" {
		return nil, fmt.Errorf("FEATURE_COLUMNS_PATH boş olamaz")
	}
	if config.DatasetPath == "" {
		return nil, fmt.Errorf("DATASET_PATH boş olamaz")
	}

	return config, nil
}

// parseTTL oturum TTL'i; boşsa 60 dakika, 0 temizliği kapatır
func parseTTL(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 60 * time.Minute, nil
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes < 0 {
		return 0, fmt.Errorf("SESSION_TTL_MINUTES geçersiz: %q", raw)
	}
	return time.Duration(minutes) * time.Minute, nil
}

func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}
