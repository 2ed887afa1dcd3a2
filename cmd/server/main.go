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

	"campaign-server/internal/auth"
	"campaign-server/internal/config"
	"campaign-server/internal/handler"
	"campaign-server/internal/video"
	"campaign-server/internal/web"
	"campaign-server/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Стандартный log только до инициализации zap
	log.Println("Запуск Campaign Server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Encoding:    cfg.LogEncoding,
		Development: !cfg.IsProduction(),
	})
	if err != nil {
		log.Fatalf("Не удалось инициализировать логгер: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	cfg.LogSummary(zapLogger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	credentials := auth.NewCredentialStore(cfg.Credentials)
	sessions, err := auth.NewSessionManager(cfg.SessionSecret, credentials, cfg.SessionCookieSecure, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to create session manager", zap.Error(err))
	}

	videoClient, err := video.NewClient(video.Config{
		APIKey:  cfg.HailuoAPIKey,
		BaseURL: cfg.HailuoBaseURL,
		Timeout: cfg.HailuoTimeout,
		Retry: video.RetryPolicy{
			MaxAttempts: cfg.HailuoPollAttempts,
			Interval:    cfg.HailuoPollInterval,
		},
	}, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to create video client", zap.Error(err))
	}

	templates, err := web.LoadTemplates(web.TemplatesFS(), zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to load HTML templates", zap.Error(err))
	}

	h, err := handler.NewCampaignHandler(zapLogger, credentials, sessions, videoClient)
	if err != nil {
		zapLogger.Fatal("Failed to create handler", zap.Error(err))
	}

	router := handler.NewRouter(h, templates, handler.RouterOptions{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		EnableMetrics:      true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Campaign server listening", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Получен сигнал завершения, останавливаем сервер...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
		return
	}
	zapLogger.Info("Сервер остановлен")
}
