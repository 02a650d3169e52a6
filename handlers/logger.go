package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careconnect/utils"
)

// getLogger retrieves the request-scoped Zap logger from the Gin context.
func getLogger(c *gin.Context) *zap.Logger {
	return utils.ContextLogger(c)
}
