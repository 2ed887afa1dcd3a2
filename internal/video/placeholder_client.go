package video

import (
	"context"

	"campaign-server/internal/models"

	"go.uber.org/zap"
)

// placeholderClient ничего не отправляет и сразу возвращает пояснение.
type placeholderClient struct {
	logger *zap.Logger
}

func (c *placeholderClient) Submit(_ context.Context, req SubmitRequest) (*models.VideoTaskResult, error) {
	c.logger.Debug("Skipping video generation, API key not configured",
		zap.Int("promptLen", len(req.Prompt)),
		zap.Int("duration", req.Duration),
	)
	return &models.VideoTaskResult{
		Message: models.StringPtr(PlaceholderMessage),
	}, nil
}
