package api

import (
	"net/http"

	"promptsmith-backend/config"
	"promptsmith-backend/internal/api/v1/builder"
	"promptsmith-backend/internal/api/v1/prompt"
	"promptsmith-backend/internal/api/v1/settings"
	"promptsmith-backend/internal/api/v1/template"
	"promptsmith-backend/internal/middleware"
	"promptsmith-backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Services are the handlers' dependencies.
type Services struct {
	Prompts   *services.PromptService
	Templates *services.TemplateService
	Settings  *services.SettingsService
}

func NewRouter(cfg *config.Config, log *zap.Logger, svc Services) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger(log), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300, // Maximum age for preflight requests
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		prompt.RegisterRoutes(v1, prompt.NewHandler(svc.Prompts))
		template.RegisterRoutes(v1, template.NewHandler(svc.Templates))
		settings.RegisterRoutes(v1, settings.NewHandler(svc.Settings))
		builder.RegisterRoutes(v1)
	}

	return router
}
