package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const invalidCredentialsMessage = "Invalid username or password"

func (h *CampaignHandler) showLoginPage(c *gin.Context) {
	if h.sessions.IsAuthenticated(c) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	h.renderLogin(c, "", "")
}

func (h *CampaignHandler) handleLogin(c *gin.Context) {
	if h.sessions.IsAuthenticated(c) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	username := c.PostForm("username")
	password := c.PostForm("password")
	log := h.logger.With(zap.String("username", username))

	if !h.credentials.Verify(username, password) {
		log.Warn("Login failed: invalid credentials")
		loginAttemptsTotal.WithLabelValues("failure").Inc()
		h.renderLogin(c, username, invalidCredentialsMessage)
		return
	}

	if err := h.sessions.SetIdentity(c, username); err != nil {
		log.Error("Failed to establish session", zap.Error(err))
		_ = c.Error(err).SetMeta("handleLogin")
		return
	}

	loginAttemptsTotal.WithLabelValues("success").Inc()
	log.Info("Login successful")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *CampaignHandler) handleLogout(c *gin.Context) {
	h.sessions.ClearIdentity(c)
	h.logger.Info("User logged out")
	c.Redirect(http.StatusSeeOther, loginPath)
}

func (h *CampaignHandler) renderLogin(c *gin.Context, username, errMessage string) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"PageTitle":  "Login",
		"IsLoggedIn": false,
		"Username":   username,
		"Error":      errMessage,
	})
}
