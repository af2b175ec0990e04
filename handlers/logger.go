package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mentorsetu/utils"
)

// getLogger returns the request-scoped logger placed on the context by the
// error middleware, falling back to the process logger.
func getLogger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get("logger"); ok {
		if logger, ok := v.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}
