// Package api assembles the HTTP router.
package api

import (
	"net/http"
	"os"
	"strings"

	"capm-calculator/internal/api/handlers"
	"capm-calculator/internal/api/middleware"
	"capm-calculator/internal/chart"
	"capm-calculator/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter wires middleware, handlers and optional static file serving.
func NewRouter(cfg *config.Config, cache *chart.RenderCache, logger logrus.FieldLogger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))
	router.Use(middleware.Logger(logger))

	calculateHandler := handlers.NewCalculateHandler(cfg, logger)
	chartHandler := handlers.NewChartHandler(cfg, cache, logger)
	variableHandler := handlers.NewVariableHandler(cfg.Defaults)
	assetHandler := handlers.NewAssetHandler(cfg.Presentation.ImagePath, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/variables", variableHandler.ListVariables)
		v1.POST("/calculate", calculateHandler.Calculate)
		v1.GET("/charts/sml", chartHandler.SML)
		v1.GET("/charts/comparison", chartHandler.Comparison)
		v1.GET("/asset", assetHandler.Asset)
	}

	staticDir := cfg.Server.StaticDir
	if info, err := os.Stat(staticDir); staticDir != "" && err == nil && info.IsDir() {
		router.Static("/assets", staticDir+"/assets")
		router.NoRoute(func(c *gin.Context) {
			// Don't serve index.html for API routes
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			c.File(staticDir + "/index.html")
		})
		logger.WithField("dir", staticDir).Info("serving static files")
	} else {
		logger.WithField("dir", staticDir).Info("static directory not found, skipping static file serving")
	}

	return router
}
