package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"careconnect/utils"
)

// RootHandler answers GET /.
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Server is running"})
}

// HealthHandler answers GET /health. The cache flag is present only when a
// cache monitor is running.
func HealthHandler(c *gin.Context) {
	resp := gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	}
	if health, ok := utils.GetHealthStatus(); ok {
		resp["cache"] = health.Cache
	}
	c.JSON(http.StatusOK, resp)
}
