package handler

import (
	"net/http"

	"campaign-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// loginPath - точка входа, куда отправляются неаутентифицированные пользователи.
const loginPath = "/"

// RequireSession пропускает запрос только с валидной сессией,
// иначе перенаправляет браузер на страницу входа.
func (h *CampaignHandler) RequireSession(c *gin.Context) {
	username, ok := h.sessions.Identity(c)
	if !ok {
		h.logger.Debug("No valid session, redirecting to login", zap.String("path", c.Request.URL.Path))
		c.Redirect(http.StatusSeeOther, loginPath)
		c.Abort()
		return
	}
	c.Set(string(models.UsernameContextKey), username)
	c.Next()
}

// RequireAPISession - вариант RequireSession для JSON API: отвечает 401.
func (h *CampaignHandler) RequireAPISession(c *gin.Context) {
	username, ok := h.sessions.Identity(c)
	if !ok {
		h.logger.Debug("Unauthenticated API request", zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	c.Set(string(models.UsernameContextKey), username)
	c.Next()
}

// currentUsername возвращает имя пользователя, установленное middleware.
func currentUsername(c *gin.Context) string {
	return c.GetString(string(models.UsernameContextKey))
}
