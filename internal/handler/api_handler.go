package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"campaign-server/internal/models"
	"campaign-server/internal/video"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// generateVideoRequest - тело POST /api/generate_video.
type generateVideoRequest struct {
	Prompt     string       `json:"prompt"`
	Duration   *flexibleInt `json:"duration"`
	Image      string       `json:"image"`
	EndImage   string       `json:"end_image"`
	Resolution string       `json:"resolution"`
}

// flexibleInt принимает число или строку с целым числом ("10").
// Дробные числа отбрасывают дробную часть.
type flexibleInt int

func (v *flexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("duration %q is not an integer: %w", raw, err)
		}
		*v = flexibleInt(n)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("duration %v is out of range", f)
	}
	*v = flexibleInt(int(f))
	return nil
}

func (h *CampaignHandler) handleGenerateVideo(c *gin.Context) {
	var req generateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid generate video request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	duration := models.DefaultDuration
	if req.Duration != nil {
		duration = int(*req.Duration)
	}

	log := h.logger.With(
		zap.String("username", currentUsername(c)),
		zap.Int("promptLen", len(req.Prompt)),
		zap.Int("duration", duration),
	)
	log.Info("Video generation requested")

	result, err := h.videoClient.Submit(c.Request.Context(), video.SubmitRequest{
		Prompt:     req.Prompt,
		Duration:   duration,
		Image:      req.Image,
		EndImage:   req.EndImage,
		Resolution: req.Resolution,
	})
	if err != nil {
		videoTasksTotal.WithLabelValues("error").Inc()
		log.Error("Video generation request failed", zap.Error(err))
		message := "video service request failed"
		if errors.Is(err, models.ErrMissingTaskID) {
			message = "video service did not return a task id"
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": message})
		return
	}

	videoTasksTotal.WithLabelValues(videoOutcome(result)).Inc()
	c.JSON(http.StatusOK, result)
}

// videoOutcome - метка результата для метрик.
func videoOutcome(result *models.VideoTaskResult) string {
	switch {
	case result.TaskID == nil:
		return "placeholder"
	case result.VideoURL != nil:
		return "succeeded"
	default:
		return "unfinished"
	}
}
