package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"sales-task-tracker/pkg/log"
)

// RequestLogger logs one line per request and tags the request context with
// the method and path.
func (m Middleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		ctx := log.WithFields(c.Request.Context(), "method", c.Request.Method, "path", c.FullPath())
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		m.l.Infof(ctx, "%d %s in %s", c.Writer.Status(), c.Request.URL.Path, time.Since(started))
	}
}
