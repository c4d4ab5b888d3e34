package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"recapd/internal/config"
	"recapd/internal/handler"
	"recapd/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	sessionH *handler.SessionHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	sessions := v1.Group("/sessions")
	sessions.POST("", sessionH.Create)
	sessions.GET("/:id", sessionH.Get)
	sessions.POST("/:id/transcript", sessionH.UploadTranscript)
	sessions.GET("/:id/transcript", sessionH.GetTranscript)
	sessions.POST("/:id/summary", sessionH.GenerateSummary)
	sessions.GET("/:id/summary", sessionH.GetSummary)
	sessions.GET("/:id/summary/download", sessionH.DownloadSummary)

	return r
}
