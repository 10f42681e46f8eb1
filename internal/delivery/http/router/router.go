package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/LavaJover/shvark-catalog-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-catalog-service/internal/delivery/http/middleware"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	Logger      *slog.Logger
	CORSOrigins []string

	// Metrics and Gatherer are both nil when metrics are disabled.
	Metrics     *metrics.CatalogMetrics
	Gatherer    prometheus.Gatherer
	MetricsPath string
}

func NewRouter(opts Options, catalog *handlers.CatalogHandler, health *handlers.HealthHandler) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(opts.Logger))
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
	}

	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  opts.CORSOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	r.GET("/health", health.Health)
	if opts.Gatherer != nil {
		r.GET(opts.MetricsPath, gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	catalog.RegisterRoutes(r)

	return r
}
