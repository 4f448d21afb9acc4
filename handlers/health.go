package handlers

import (
	"net/http"

	"spotbook/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest health snapshot of external services.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"health": utils.GetHealthStatus(),
	})
}
