package handler

import (
	"net/http"

	"campaign-server/internal/content"
	"campaign-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *CampaignHandler) showDashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"PageTitle":  "Dashboard",
		"IsLoggedIn": true,
		"Username":   currentUsername(c),
	})
}

// handleBrief принимает бриф и рендерит направления и раскадровки.
func (h *CampaignHandler) handleBrief(c *gin.Context) {
	brief := content.NewBrief(c.PostForm("product"), c.PostForm("num_videos"), c.PostForm("duration"))

	h.logger.Info("Brief received",
		zap.String("username", currentUsername(c)),
		zap.Int("productLen", len(brief.Product)),
		zap.Int("numVideos", brief.NumVideos),
		zap.Int("duration", brief.DurationSeconds),
	)

	directions := content.GenerateDirections(brief.Product)
	storyboards := content.GenerateStoryboards(brief.Product, brief.NumVideos, brief.DurationSeconds)
	briefsGeneratedTotal.Inc()

	c.HTML(http.StatusOK, "results.html", gin.H{
		"PageTitle":   "Results",
		"IsLoggedIn":  true,
		"Username":    currentUsername(c),
		"Product":     brief.Product,
		"NumVideos":   brief.NumVideos,
		"Duration":    brief.DurationSeconds,
		"Order":       models.AllDirections,
		"Directions":  directions,
		"Storyboards": storyboards,
	})
}
