package middleware

import (
	"strconv"
	"time"

	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics labels by route template so path ids do not blow up cardinality.
func Metrics(m *metrics.CatalogMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := routeLabel(c)
		m.HTTPRequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
