package domain

import (
	"context"
	"strings"
	"time"
)

type CatalogEventType string

const (
	BankCreated    CatalogEventType = "bank.created"
	BankUpdated    CatalogEventType = "bank.updated"
	BankDeleted    CatalogEventType = "bank.deleted"
	DepositCreated CatalogEventType = "deposit.created"
	DepositUpdated CatalogEventType = "deposit.updated"
	DepositDeleted CatalogEventType = "deposit.deleted"
)

// Parts splits "deposit.created" into ("deposit", "created").
func (t CatalogEventType) Parts() (entity, action string) {
	entity, action, _ = strings.Cut(string(t), ".")
	return entity, action
}

type CatalogEvent struct {
	Type       CatalogEventType
	EntityID   int64
	BankID     int64
	OccurredAt time.Time
}

type CatalogEventPublisher interface {
	PublishCatalogEvent(ctx context.Context, event CatalogEvent) error
}
