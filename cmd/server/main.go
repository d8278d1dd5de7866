package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourusername/export-advisor-bot/config"
	"github.com/yourusername/export-advisor-bot/internal/delivery/httpapi"
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
	logger.InfoLogger.Println("HTTP sunucusu başlatılıyor...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("konfigürasyon yüklenemedi: %v", err)
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

	// 3. Oturum deposu (Redis varsa Redis, yoksa in-memory)
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

	// 6. Use case'ler ve router
	dialog := usecase.NewDialogUseCase(sessionRepo, productRepo, aiRepo, model, chatLog)
	predict := usecase.NewPredictUseCase(model, productRepo)
	router := httpapi.NewRouter(httpapi.NewHandler(dialog, predict))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		logger.InfoLogger.Printf("dinleniyor: %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("sunucu hatası: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	logger.InfoLogger.Println("kapatma sinyali alındı...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.ErrorLogger.Printf("sunucu düzgün kapatılamadı: %v", err)
	}
	logger.InfoLogger.Println("sunucu durduruldu.")
}
