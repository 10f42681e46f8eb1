package metrics

import (
	"context"

	"github.com/LavaJover/shvark-catalog-service/internal/domain"
)

type instrumentedPublisher struct {
	next    domain.CatalogEventPublisher
	metrics *CatalogMetrics
}

// InstrumentPublisher counts every catalog mutation before handing the event to next.
func (m *CatalogMetrics) InstrumentPublisher(next domain.CatalogEventPublisher) domain.CatalogEventPublisher {
	return &instrumentedPublisher{next: next, metrics: m}
}

func (p *instrumentedPublisher) PublishCatalogEvent(ctx context.Context, event domain.CatalogEvent) error {
	p.metrics.RecordMutation(event.Type)
	return p.next.PublishCatalogEvent(ctx, event)
}
