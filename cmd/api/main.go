package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"capm-calculator/internal/api"
	"capm-calculator/internal/chart"
	"capm-calculator/internal/config"
	"capm-calculator/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CAPM_CONFIG"))
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	logger := logging.New(cfg.Log.Level, os.Stderr)

	if wd, err := os.Getwd(); err == nil {
		logger.WithField("dir", wd).Info("working directory")
	}
	if _, err := os.Stat(cfg.Presentation.ImagePath); err != nil {
		logger.WithField("path", cfg.Presentation.ImagePath).Warn("decorative image not found; results will be shown without it")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache := chart.NewRenderCache(cfg.Chart.CacheTTL)
	go cache.Janitor(ctx, 5*time.Minute)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           api.NewRouter(cfg, cache, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.WithField("addr", srv.Addr).Info("starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
}
