package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"

	"github.com/sergeii/enigma/internal/metrics"
)

func Metrics(collector *metrics.Collector, clock clockwork.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := clock.Now()
		c.Next()

		method := c.Request.Method
		collector.APIRequests.WithLabelValues(method, strconv.Itoa(c.Writer.Status())).Inc()
		collector.APIDurations.WithLabelValues(method).Observe(clock.Since(started).Seconds())
	}
}
