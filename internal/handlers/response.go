package handlers

import (
	"github.com/gin-gonic/gin"

	"employee-management/internal/models"
)

// respond writes the uniform envelope for the given status code.
func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, models.NewResponse(status, data, message))
}
