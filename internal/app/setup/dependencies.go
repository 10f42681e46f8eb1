package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/LavaJover/shvark-catalog-service/internal/config"
	"github.com/LavaJover/shvark-catalog-service/internal/domain"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/postgres/repository"
	catalogredis "github.com/LavaJover/shvark-catalog-service/internal/infrastructure/redis"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.CatalogConfig
	Logger       *slog.Logger
	DB           *gorm.DB
	Publisher    domain.CatalogEventPublisher
	BankCache    domain.BankCache
	Repositories *Repositories

	// nil when metrics are disabled
	Registry *prometheus.Registry
	Metrics  *metrics.CatalogMetrics

	closers []io.Closer
}

type Repositories struct {
	BankRepo    domain.BankRepository
	DepositRepo domain.DepositRepository
}

func InitializeDependencies(cfg *config.CatalogConfig) (*Dependencies, error) {
	deps := &Dependencies{Config: cfg}

	log, logCloser, err := logger.New(cfg.LogConfig)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	slog.SetDefault(log)
	deps.Logger = log
	deps.closers = append(deps.closers, logCloser)

	db, err := initDatabase(cfg)
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.DB = db

	if cfg.Metrics.Enabled {
		deps.Registry = prometheus.NewRegistry()
		deps.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		deps.Metrics = metrics.NewCatalogMetrics(deps.Registry)
	}

	publisher, err := initPublisher(deps)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("catalog event publisher: %w", err)
	}
	deps.Publisher = publisher

	cache, err := initBankCache(deps)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("bank cache: %w", err)
	}
	deps.BankCache = cache

	deps.Repositories = &Repositories{
		BankRepo:    repository.NewDefaultBankRepository(db),
		DepositRepo: repository.NewDefaultDepositRepository(db),
	}

	return deps, nil
}

func initDatabase(cfg *config.CatalogConfig) (*gorm.DB, error) {
	db, err := postgres.InitDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	return prepareDatabase(db, cfg.CatalogDB)
}

// prepareDatabase migrates and seeds db. db is closed when either step fails.
func prepareDatabase(db *gorm.DB, cfg config.CatalogDB) (*gorm.DB, error) {
	fail := func(err error) (*gorm.DB, error) {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, err
	}

	// with auto_migrate the schema already comes from the gorm models
	if !cfg.AutoMigrate {
		if err := migrate.RunMigrations(db, cfg.MigrationsPath); err != nil {
			return fail(fmt.Errorf("migrations: %w", err))
		}
	}

	if cfg.Seed {
		seeded, err := postgres.SeedCatalog(context.Background(), db)
		if err != nil {
			return fail(fmt.Errorf("seed: %w", err))
		}
		slog.Info("catalog seed checked", "inserted", seeded)
	}

	return db, nil
}

// initPublisher falls back to the catalog_event_logs table when Kafka is off.
func initPublisher(deps *Dependencies) (domain.CatalogEventPublisher, error) {
	var publisher domain.CatalogEventPublisher
	if deps.Config.KafkaService.Enabled {
		kafkaPublisher, err := kafka.NewKafkaPublisher(deps.Config.KafkaService.Brokers, deps.Config.KafkaService.Topic)
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, kafkaPublisher)
		publisher = kafkaPublisher
		slog.Info("catalog events go to kafka", "topic", deps.Config.KafkaService.Topic)
	} else {
		publisher = logger.NewPGCatalogEventLogger(deps.DB)
	}

	if deps.Metrics != nil {
		publisher = deps.Metrics.InstrumentPublisher(publisher)
	}
	return publisher, nil
}

func initBankCache(deps *Dependencies) (domain.BankCache, error) {
	if !deps.Config.RedisCache.Enabled {
		return catalogredis.NoopBankCache{}, nil
	}

	client, err := catalogredis.NewClient(deps.Config.RedisCache)
	if err != nil {
		return nil, err
	}
	deps.closers = append(deps.closers, client)
	return catalogredis.NewBankListCache(client, deps.Config.RedisCache.TTL), nil
}

// Close releases everything in reverse order of acquisition.
func (d *Dependencies) Close() error {
	var errs []error
	if d.DB != nil {
		if sqlDB, err := d.DB.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i].Close())
	}
	return errors.Join(errs...)
}
