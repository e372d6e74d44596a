package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

func Logging(logger *zerolog.Logger, clock clockwork.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := clock.Now()
		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Info()
		default:
			event = logger.Debug()
		}
		event.
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("took", clock.Since(started)).
			Msg("Handled API request")
	}
}
