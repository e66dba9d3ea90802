package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clubnavi/portal/internal/config"
	"clubnavi/portal/internal/handler/middleware"
	jwtpkg "clubnavi/portal/pkg/jwt"
)

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	jwtManager *jwtpkg.Manager,
	previewHandler *PreviewHandler,
	pageHandler *PageHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Preview creation requires an editor session; the bridge does not —
	// it only proves knowledge of a live preview id, and an expired or
	// unknown id is a plain 404.
	r.POST("/preview", middleware.EditorAuth(jwtManager), previewHandler.Create)
	r.GET("/preview/bridge", previewHandler.Bridge)

	// Render-path consumers: the pages an editor previews.
	pages := r.Group("/api/v1/pages")
	{
		pages.GET("/home", pageHandler.Home)
		pages.GET("/prefectures/:code", pageHandler.Prefecture)
	}

	return r
}
