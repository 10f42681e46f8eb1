package setup

import (
	"fmt"

	"github.com/LavaJover/shvark-catalog-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-catalog-service/internal/delivery/http/router"
	"github.com/gin-gonic/gin"
)

func InitializeRouter(deps *Dependencies, ucs *UseCases) (*gin.Engine, error) {
	sqlDB, err := deps.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}

	opts := router.Options{
		Logger:      deps.Logger,
		CORSOrigins: deps.Config.HTTPServer.CORSOrigins,
		MetricsPath: deps.Config.Metrics.Path,
	}
	if deps.Metrics != nil {
		opts.Metrics = deps.Metrics
		opts.Gatherer = deps.Registry
	}

	return router.NewRouter(
		opts,
		handlers.NewCatalogHandler(ucs.BankUsecase, ucs.DepositUsecase, deps.Metrics),
		handlers.NewHealthHandler(sqlDB),
	), nil
}
