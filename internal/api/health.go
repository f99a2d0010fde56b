package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/mealplan-gateway/backend/internal/types"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:  "ok",
		Message: "Meal plan service is up and running",
	})
}
