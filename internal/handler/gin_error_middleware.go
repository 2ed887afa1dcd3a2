package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomErrorMiddleware логирует ошибки, добавленные обработчиками в c.Errors,
// и отвечает 500, если ответ еще не отправлен.
func CustomErrorMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, ginErr := range c.Errors {
			meta, _ := ginErr.Meta.(string)
			logger.Error("Handler error",
				zap.Error(ginErr.Err),
				zap.String("meta", meta),
				zap.Int("type", int(ginErr.Type)),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
		}
		if !c.Writer.Written() {
			c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
	}
}
