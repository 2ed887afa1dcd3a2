package video

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"campaign-server/internal/models"

	"go.uber.org/zap"
)

const (
	submitPath     = "/v3/async/minimax-hailuo-02"
	taskResultPath = "/v3/async/task-result"

	statusSucceed = "TASK_STATUS_SUCCEED"
	statusFailed  = "TASK_STATUS_FAILED"

	messageGenerationFailed = "Generation failed"
	messageTimedOut         = "Timed out waiting for video"
)

// hailuoSubmitRequest - тело запроса на создание задачи.
type hailuoSubmitRequest struct {
	Prompt                string `json:"prompt"`
	Duration              int    `json:"duration"`
	Resolution            string `json:"resolution"`
	EnablePromptExpansion bool   `json:"enable_prompt_expansion"`
	Image                 string `json:"image,omitempty"`
	EndImage              string `json:"end_image,omitempty"`
}

type hailuoSubmitResponse struct {
	TaskID string `json:"task_id"`
}

type hailuoTaskResultResponse struct {
	Task struct {
		TaskID string `json:"task_id"`
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"task"`
	Videos []struct {
		VideoURL string `json:"video_url"`
	} `json:"videos"`
}

type hailuoClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	retry      RetryPolicy
	logger     *zap.Logger
}

func newHailuoClient(cfg Config, logger *zap.Logger) *hailuoClient {
	return &hailuoClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		retry:  cfg.Retry,
		logger: logger.Named("HailuoClient"),
	}
}

// Submit создает асинхронную задачу и опрашивает ее статус до терминального состояния
// или исчерпания попыток.
func (c *hailuoClient) Submit(ctx context.Context, req SubmitRequest) (*models.VideoTaskResult, error) {
	submitURL := c.baseURL + submitPath
	log := c.logger.With(zap.String("url", submitURL), zap.Int("duration", req.Duration))

	payload := hailuoSubmitRequest{
		Prompt:                req.Prompt,
		Duration:              req.Duration,
		Resolution:            req.resolution(),
		EnablePromptExpansion: true,
		Image:                 req.Image,
		EndImage:              req.EndImage,
	}

	var submitResp hailuoSubmitResponse
	if err := c.doJSON(ctx, http.MethodPost, submitURL, payload, &submitResp); err != nil {
		log.Error("Failed to submit video generation task", zap.Error(err))
		return nil, err
	}
	if submitResp.TaskID == "" {
		log.Error("Video service response has no task_id")
		return nil, models.ErrMissingTaskID
	}

	taskID := submitResp.TaskID
	log = log.With(zap.String("taskID", taskID))
	log.Info("Video generation task submitted")

	statusURL := c.baseURL + taskResultPath + "?task_id=" + url.QueryEscape(taskID)
	for attempt := 1; attempt <= c.retry.MaxAttempts; attempt++ {
		var result hailuoTaskResultResponse
		if err := c.doJSON(ctx, http.MethodGet, statusURL, nil, &result); err != nil {
			log.Error("Failed to poll video task status", zap.Int("attempt", attempt), zap.Error(err))
			return nil, err
		}

		switch result.Task.Status {
		case statusSucceed:
			out := &models.VideoTaskResult{TaskID: models.StringPtr(taskID)}
			if len(result.Videos) > 0 {
				out.VideoURL = models.StringPtr(result.Videos[0].VideoURL)
			}
			log.Info("Video generation succeeded", zap.Int("attempt", attempt), zap.Bool("hasVideo", out.VideoURL != nil))
			return out, nil
		case statusFailed:
			log.Warn("Video generation failed", zap.Int("attempt", attempt), zap.String("reason", result.Task.Reason))
			return &models.VideoTaskResult{
				TaskID:  models.StringPtr(taskID),
				Message: models.StringPtr(messageGenerationFailed),
			}, nil
		}

		log.Debug("Video task not finished yet", zap.Int("attempt", attempt), zap.String("status", result.Task.Status))
		if attempt == c.retry.MaxAttempts {
			break
		}
		if err := c.retry.Wait(ctx); err != nil {
			return nil, fmt.Errorf("polling video task %s interrupted: %w", taskID, err)
		}
	}

	log.Warn("Timed out waiting for video", zap.Int("attempts", c.retry.MaxAttempts))
	return &models.VideoTaskResult{
		TaskID:  models.StringPtr(taskID),
		Message: models.StringPtr(messageTimedOut),
	}, nil
}

// doJSON выполняет запрос с авторизацией и декодирует JSON ответ в out.
func (c *hailuoClient) doJSON(ctx context.Context, method, endpoint string, body interface{}, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("internal error marshaling request: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("internal error creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to communicate with video service: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read video service response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Received non-OK status from video service",
			zap.String("url", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		return fmt.Errorf("%w: %d", models.ErrUpstreamStatus, resp.StatusCode)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("invalid response format from video service: %w", err)
	}
	return nil
}
