package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/yourusername/export-advisor-bot/config"
	"github.com/yourusername/export-advisor-bot/internal/delivery/telegram"
	"github.com/yourusername/export-advisor-bot/internal/domain/repository"
	"github.com/yourusername/export-advisor-bot/internal/infrastructure/gemini"
	"github.com/yourusername/export-advisor-bot/internal/infrastructure/mlmodel"
	"github.com/yourusername/export-advisor-bot/internal/infrastructure/parser"
	"github.com/yourusername/export-advisor-bot/internal/infrastructure/storage"
	"github.com/yourusername/export-advisor-bot/internal/usecase"
	"github.com/yourusername/export-advisor-bot/pkg/logger"
)

func main() {
	logger.Init()
	logger.InfoLogger.Println("Telegram botu başlatılıyor...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("konfigürasyon yüklenemedi: %v", err)
	}
	if cfg.TelegramToken == "" {
		log.Fatalf("TELEGRAM_BOT_TOKEN environment variable boş")
	}

	// 1. Fiyat modeli
	artifact, err := mlmodel.LoadArtifact(cfg.ModelPath)
	if err != nil {
		log.Fatalf("model yüklenemedi: %v", err)
	}
	columns, err := mlmodel.LoadFeatureColumns(cfg.FeatureColumnsPath)
	if err != nil {
		log.Fatalf("kolon listesi yüklenemedi: %v", err)
	}
	model := mlmodel.NewPriceOracle(artifact, columns)
	logger.InfoLogger.Printf("fiyat modeli hazır (%d kolon)", len(columns))

	// 2. Referans veri seti
	productRepo := storage.NewMemoryProductRepository()
	products, err := parser.NewDatasetParser().ParseFile(cfg.DatasetPath)
	if err != nil {
		log.Fatalf("veri seti yüklenemedi: %v", err)
	}
	if err := productRepo.SaveMany(context.Background(), products); err != nil {
		log.Fatalf("katalog doldurulamadı: %v", err)
	}
	logger.InfoLogger.Printf("katalog hazır (%d kayıt)", len(products))

	// 3. Oturum deposu
	var sessionRepo repository.SessionRepository
	if cfg.RedisAddr != "" {
		sessionRepo, err = storage.NewRedisSessionRepository(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL)
		if err != nil {
			log.Fatalf("redis oturum deposu açılamadı: %v", err)
		}
		logger.InfoLogger.Println("oturum deposu hazır (redis)")
	} else {
		sessionRepo = storage.NewMemorySessionRepository(cfg.SessionTTL)
		logger.InfoLogger.Println("oturum deposu hazır (in-memory)")
	}
	defer sessionRepo.Close()

	// 4. Gemini client
	aiRepo, err := gemini.NewGeminiClient(cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("gemini client yaratılamadı: %v", err)
	}
	defer aiRepo.Close()
	logger.InfoLogger.Println("gemini client hazır")

	// 5. Transkript kaydı (opsiyonel)
	var chatLog repository.ChatLogRepository
	if cfg.DatabaseURL != "" {
		chatLog, err = storage.NewPostgresChatLogRepository(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres transkript deposu açılamadı: %v", err)
		}
		defer chatLog.Close()
		logger.InfoLogger.Println("transkript kaydı hazır (postgres)")
	}

	// 6. Diyalog motoru ve bot
	dialog := usecase.NewDialogUseCase(sessionRepo, productRepo, aiRepo, model, chatLog)
	botHandler, err := telegram.NewBotHandler(cfg.TelegramToken, dialog)
	if err != nil {
		log.Fatalf("bot handler yaratılamadı: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := botHandler.Start(ctx); err != nil && err != context.Canceled {
			logger.ErrorLogger.Printf("bot hatası: %v", err)
		}
	}()
	logger.InfoLogger.Println("bot çalışıyor. Durdurmak için Ctrl+C.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	logger.InfoLogger.Println("kapatma sinyali alındı...")

	cancel()
	logger.InfoLogger.Println("bot durduruldu.")
}
