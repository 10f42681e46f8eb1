package background

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LavaJover/shvark-catalog-service/internal/config"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-catalog-service/internal/usecase"
	"github.com/robfig/cron/v3"
)

type BackgroundTasks struct {
	DepositUsecase usecase.DepositUsecase
	Metrics        *metrics.CatalogMetrics
}

func NewBackgroundTasks(depositUC usecase.DepositUsecase, catalogMetrics *metrics.CatalogMetrics) *BackgroundTasks {
	return &BackgroundTasks{
		DepositUsecase: depositUC,
		Metrics:        catalogMetrics,
	}
}

// StartAll schedules the jobs and stops the scheduler once ctx is done.
func (bt *BackgroundTasks) StartAll(ctx context.Context, cfg config.Background) error {
	if bt.Metrics == nil {
		slog.Info("metrics disabled, catalog stats job not scheduled")
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(cfg.StatsSchedule, func() {
		if err := bt.RefreshActiveDeposits(ctx); err != nil {
			slog.Error("catalog stats refresh failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid stats schedule %q: %w", cfg.StatsSchedule, err)
	}

	// first values before the first tick
	if err := bt.RefreshActiveDeposits(ctx); err != nil {
		slog.Error("catalog stats refresh failed", "error", err)
	}

	c.Start()
	slog.Info("catalog stats job scheduled", "schedule", cfg.StatsSchedule)

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
	}()
	return nil
}

func (bt *BackgroundTasks) RefreshActiveDeposits(ctx context.Context) error {
	counts, err := bt.DepositUsecase.CountActiveByCurrency(ctx)
	if err != nil {
		return err
	}
	bt.Metrics.SetActiveDeposits(counts)
	return nil
}
