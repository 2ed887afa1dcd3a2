package handler

import (
	"errors"
	"html/template"
	"net/http"

	"campaign-server/internal/auth"
	"campaign-server/internal/middleware"
	"campaign-server/internal/video"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
)

// CampaignHandler обрабатывает HTTP запросы сервиса.
type CampaignHandler struct {
	logger      *zap.Logger
	credentials *auth.CredentialStore
	sessions    *auth.SessionManager
	videoClient video.Client
}

// NewCampaignHandler создает новый CampaignHandler.
func NewCampaignHandler(
	logger *zap.Logger,
	credentials *auth.CredentialStore,
	sessions *auth.SessionManager,
	videoClient video.Client,
) (*CampaignHandler, error) {
	if credentials == nil || sessions == nil || videoClient == nil {
		return nil, errors.New("credentials, sessions and video client are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CampaignHandler{
		logger:      logger.Named("CampaignHandler"),
		credentials: credentials,
		sessions:    sessions,
		videoClient: videoClient,
	}, nil
}

// RouterOptions - настройки сборки gin.Engine.
type RouterOptions struct {
	CORSAllowedOrigins []string
	EnableMetrics      bool // регистрирует /metrics и метрики запросов gin
}

// NewRouter собирает gin.Engine со всеми middleware и маршрутами.
func NewRouter(h *CampaignHandler, templates *template.Template, opts RouterOptions) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.GinZapLogger(h.logger))
	router.Use(CustomErrorMiddleware(h.logger))

	if opts.EnableMetrics {
		// Префикс для метрик (например, gin_requests_total). Регистрирует GET /metrics.
		p := ginprometheus.NewPrometheus("gin")
		p.Use(router)
	}

	router.Use(cors.New(corsConfig(opts.CORSAllowedOrigins)))

	router.SetHTMLTemplate(templates)
	h.RegisterRoutes(router)
	return router
}

// RegisterRoutes регистрирует маршруты сервиса.
func (h *CampaignHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.healthCheck)

	router.GET("/", h.showLoginPage)
	router.POST("/", h.handleLogin)
	router.GET("/logout", h.handleLogout)

	dashboard := router.Group("/dashboard", h.RequireSession)
	{
		dashboard.GET("", h.showDashboard)
		dashboard.POST("", h.handleBrief)
	}

	api := router.Group("/api", h.RequireAPISession)
	{
		api.POST("/generate_video", h.handleGenerateVideo)
	}
}

func (h *CampaignHandler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = len(allowedOrigins) == 0
	for _, origin := range allowedOrigins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
		}
	}
	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = allowedOrigins
	}
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	cfg.AllowCredentials = true
	return cfg
}
