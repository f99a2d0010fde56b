package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mealplan-gateway/backend/internal/middleware"
	"github.com/pageza/mealplan-gateway/backend/internal/service"
	"github.com/pageza/mealplan-gateway/backend/internal/types"
)

// ModelErrorDetail is the fixed detail sent when the generation service
// answers with a failure status.
const ModelErrorDetail = "Model error: failed to generate meal plan"

// MealPlanHandler handles meal plan generation requests
type MealPlanHandler struct {
	generator service.MealPlanGenerator
	logger    logrus.FieldLogger
}

// NewMealPlanHandler creates a new MealPlanHandler instance
func NewMealPlanHandler(generator service.MealPlanGenerator, logger logrus.FieldLogger) *MealPlanHandler {
	return &MealPlanHandler{
		generator: generator,
		logger:    logger,
	}
}

// RegisterRoutes registers the meal plan routes
func (h *MealPlanHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/generate-meal-plan/", h.GenerateMealPlan)
}

// GenerateMealPlan validates the body, forwards it to the generator and
// relays the generator's JSON unchanged.
func (h *MealPlanHandler) GenerateMealPlan(c *gin.Context) {
	var req types.MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, types.ErrorResponse{Detail: err.Error()})
		return
	}

	payload, err := h.generator.Generate(c.Request.Context(), &req)
	if err != nil {
		status, detail := h.classify(c, err)
		_ = c.Error(err)
		c.JSON(status, types.ErrorResponse{Detail: detail})
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}

// classify maps a generator failure onto the response status and detail
func (h *MealPlanHandler) classify(c *gin.Context, err error) (int, string) {
	log := h.logger.WithFields(logrus.Fields{
		"request_id": middleware.GetRequestID(c),
		"error":      err.Error(),
	})

	var statusErr *service.UpstreamStatusError
	if errors.As(err, &statusErr) {
		log.WithField("upstream_status", statusErr.StatusCode).Warn("generation service returned an error status")
		return propagatedStatus(statusErr.StatusCode), ModelErrorDetail
	}

	var transportErr *service.TransportError
	if errors.As(err, &transportErr) {
		log.WithField("timeout", transportErr.Timeout()).Error("generation service unreachable")
	} else {
		log.Error("meal plan generation failed")
	}
	return http.StatusInternalServerError, "Error: " + err.Error()
}

// propagatedStatus passes the upstream status through unless it cannot
// carry the detail body (1xx, 204, 205, 304 or out of range), which becomes 502.
func propagatedStatus(code int) int {
	switch {
	case code < 200 || code > 599:
		return http.StatusBadGateway
	case code == http.StatusNoContent, code == http.StatusResetContent, code == http.StatusNotModified:
		return http.StatusBadGateway
	}
	return code
}
