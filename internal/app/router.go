package app

import (
	"finlearn_backend/docs"
	"finlearn_backend/internal/config"
	"finlearn_backend/internal/middleware"

	"finlearn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/signup", c.auth.Signup)
		public.POST("/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.progress.GetProfile)
		authGroup.POST("/progress", c.progress.PostProgress)
		authGroup.POST("/position", c.progress.PostPosition)

		authGroup.GET("/modules", c.curriculum.GetModules)
		authGroup.GET("/modules/:moduleId/lessons/:lessonId", c.curriculum.GetLesson)
		authGroup.GET("/modules/:moduleId/lessons/:lessonId/cheatsheet", c.curriculum.GetCheatSheet)

		authGroup.POST("/calculators/:formula", c.calculator.Evaluate)
		authGroup.GET("/tax/regimes", c.calculator.GetRegimes)
		authGroup.POST("/tax/compare", c.calculator.CompareTax)
	}
}
