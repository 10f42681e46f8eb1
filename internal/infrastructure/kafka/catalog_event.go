package kafka

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/LavaJover/shvark-catalog-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type CatalogEventMessage struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	EntityID   int64     `json:"entity_id"`
	BankID     int64     `json:"bank_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// encodeCatalogEvent keys messages by bank so one bank's changes stay on one partition.
func encodeCatalogEvent(eventID string, event domain.CatalogEvent) (kafka.Message, error) {
	value, err := json.Marshal(CatalogEventMessage{
		EventID:    eventID,
		Type:       string(event.Type),
		EntityID:   event.EntityID,
		BankID:     event.BankID,
		OccurredAt: event.OccurredAt.UTC(),
	})
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(strconv.FormatInt(event.BankID, 10)),
		Value: value,
		Time:  event.OccurredAt,
	}, nil
}
