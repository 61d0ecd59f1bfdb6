package router

import (
	"article-intake/config"
	"article-intake/handlers"
	"article-intake/helper"
	"article-intake/middleware"
	"article-intake/repositories"
	"article-intake/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New wires repositories, services and handlers onto a gin engine.
func New(cfg *config.Config, db *gorm.DB, log *zap.Logger) (*gin.Engine, error) {
	httpHelper, err := helper.NewHTTPHelper()
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	articleRepo := repositories.NewArticleRepository(db)

	// Initialize services
	articleService := services.NewArticleService(articleRepo)

	// Initialize handlers
	articleHandler := handlers.NewArticleHandler(articleService, httpHelper, log)
	homeHandler := handlers.NewHomeHandler(cfg.StaticDir)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(log),
		middleware.MetricsMiddleware(),
		middleware.CORSMiddleware(),
	)

	router.GET("/", homeHandler.Home)
	router.Static("/static", cfg.StaticDir)
	router.POST("/submit", articleHandler.SubmitArticle)
	router.GET("/ping", handlers.Ping)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router, nil
}
