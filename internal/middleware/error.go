package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mealplan-gateway/backend/internal/types"
)

// Recovery turns a panic into a JSON 500 and logs what was recovered
func Recovery(logger logrus.FieldLogger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.WithFields(logrus.Fields{
			"request_id": GetRequestID(c),
			"panic":      recovered,
		}).Error("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{Detail: "Internal Server Error"})
	})
}

// NotFound answers unknown routes with a JSON detail body
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, types.ErrorResponse{Detail: "Not Found"})
}

// MethodNotAllowed answers known routes hit with the wrong method
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, types.ErrorResponse{Detail: "Method Not Allowed"})
}
