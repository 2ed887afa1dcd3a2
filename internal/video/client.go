// Package video формирует запросы к внешнему сервису асинхронной генерации видео
// (MiniMax Hailuo 02 через Novita) и опрашивает статус задачи.
package video

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"campaign-server/internal/models"

	"go.uber.org/zap"
)

// DefaultResolution - разрешение ролика, если вызывающий его не указал.
const DefaultResolution = "768P"

// PlaceholderMessage возвращается, когда ключ API не настроен.
const PlaceholderMessage = "Hailuo API key not configured; skipping real API call."

// SubmitRequest - параметры задачи генерации. Image и EndImage - URL или base64
// первого и последнего кадров, пустая строка означает "не передавать".
// Допустимые Duration (6 или 10) определяет внешний сервис, клиент их не проверяет.
type SubmitRequest struct {
	Prompt     string
	Duration   int
	Image      string
	EndImage   string
	Resolution string
}

// Client определяет интерфейс отправки задачи генерации видео.
type Client interface {
	// Submit отправляет задачу и ждет ее завершения.
	// Неудача генерации и таймаут возвращаются как обычный результат, не как ошибка.
	Submit(ctx context.Context, req SubmitRequest) (*models.VideoTaskResult, error)
}

// Config содержит настройки клиента.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration // таймаут одного HTTP запроса
	Retry   RetryPolicy
}

// NewClient выбирает реализацию один раз при создании:
// без ключа API - заглушка без сетевых вызовов, с ключом - живой клиент.
func NewClient(cfg Config, logger *zap.Logger) (Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.APIKey == "" {
		logger.Info("Hailuo API key not configured, video client works in placeholder mode")
		return &placeholderClient{logger: logger.Named("PlaceholderVideoClient")}, nil
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL for video service: %w", err)
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry = DefaultRetryPolicy()
	}
	return newHailuoClient(cfg, logger), nil
}

func (r SubmitRequest) resolution() string {
	if r.Resolution == "" {
		return DefaultResolution
	}
	return r.Resolution
}
