package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mealplan-gateway/backend/config"
	"github.com/pageza/mealplan-gateway/backend/internal/api"
	"github.com/pageza/mealplan-gateway/backend/internal/metrics"
	"github.com/pageza/mealplan-gateway/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	cfg *config.Config,
	mealPlanHandler *api.MealPlanHandler,
	m *metrics.Metrics,
	logger logrus.FieldLogger,
) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Metrics(m),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	router.NoRoute(middleware.NotFound)
	router.NoMethod(middleware.MethodNotAllowed)

	router.GET("/health", api.HealthCheck)
	mealPlanHandler.RegisterRoutes(router)

	if cfg.Metrics.Enabled && m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	return router
}
