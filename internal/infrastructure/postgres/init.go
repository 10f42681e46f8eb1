package postgres

import (
	"fmt"

	"github.com/LavaJover/shvark-catalog-service/internal/config"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func InitDB(cfg *config.CatalogConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.CatalogDB.Dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	if cfg.CatalogDB.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.CatalogDB.MaxOpenConns)
	}

	if cfg.CatalogDB.AutoMigrate {
		if err := AutoMigrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// AutoMigrate creates the schema from the gorm models. Production
// deployments use the SQL migrations instead.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.BankModel{}, &models.DepositModel{}, &logger.CatalogEventLog{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
