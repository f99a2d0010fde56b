package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mealplan-gateway/backend/config"
	"github.com/pageza/mealplan-gateway/backend/internal/api"
	"github.com/pageza/mealplan-gateway/backend/internal/logger"
	"github.com/pageza/mealplan-gateway/backend/internal/metrics"
	"github.com/pageza/mealplan-gateway/backend/internal/router"
	"github.com/pageza/mealplan-gateway/backend/internal/server"
	"github.com/pageza/mealplan-gateway/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logr, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.New()

	mealPlanService, err := service.NewMealPlanService(cfg.Generator, logr, m)
	if err != nil {
		logr.WithError(err).Fatal("failed to create meal plan service")
	}
	logr.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"endpoint":    mealPlanService.Endpoint(),
		"model":       cfg.Generator.Model,
		"timeout":     cfg.Generator.Timeout.String(),
	}).Info("generation service configured")

	handler := api.NewMealPlanHandler(mealPlanService, logr)
	srv := server.New(cfg, router.SetupRouter(cfg, handler, m, logr), logr)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logr.WithError(err).Fatal("server error")
		}
		return
	case sig := <-quit:
		logr.WithField("signal", sig.String()).Info("shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.WithError(err).Error("server shutdown error")
	}
	logr.Info("server stopped")
}
