package logger

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-catalog-service/internal/domain"
	"gorm.io/gorm"
)

// CatalogEventLog is the audit row written for every catalog change when
// no broker is configured.
type CatalogEventLog struct {
	ID         uint   `gorm:"primaryKey"`
	EventType  string `gorm:"size:32;not null;index"`
	EntityID   int64  `gorm:"not null"`
	BankID     int64  `gorm:"not null"`
	OccurredAt time.Time
}

func (CatalogEventLog) TableName() string {
	return "catalog_event_logs"
}

type PGCatalogEventLogger struct {
	db *gorm.DB
}

func NewPGCatalogEventLogger(db *gorm.DB) *PGCatalogEventLogger {
	return &PGCatalogEventLogger{db: db}
}

func (l *PGCatalogEventLogger) PublishCatalogEvent(ctx context.Context, event domain.CatalogEvent) error {
	return l.db.WithContext(ctx).Create(&CatalogEventLog{
		EventType:  string(event.Type),
		EntityID:   event.EntityID,
		BankID:     event.BankID,
		OccurredAt: event.OccurredAt,
	}).Error
}
