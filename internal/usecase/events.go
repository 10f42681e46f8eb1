package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-catalog-service/internal/domain"
)

// eventNotifier publishes after a committed mutation. A failed publish never
// fails the mutation itself.
type eventNotifier struct {
	publisher domain.CatalogEventPublisher
}

func (n eventNotifier) notify(ctx context.Context, eventType domain.CatalogEventType, entityID, bankID int64, at time.Time) {
	if n.publisher == nil {
		return
	}
	err := n.publisher.PublishCatalogEvent(ctx, domain.CatalogEvent{
		Type:       eventType,
		EntityID:   entityID,
		BankID:     bankID,
		OccurredAt: at,
	})
	if err != nil {
		slog.Warn("failed to publish catalog event",
			"type", eventType,
			"entity_id", entityID,
			"error", err,
		)
	}
}

func utcNow() time.Time {
	return time.Now().UTC()
}
