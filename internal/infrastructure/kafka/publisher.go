package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-catalog-service/internal/domain"
	"github.com/jaevor/go-nanoid"
	"github.com/segmentio/kafka-go"
)

const publishTimeout = 10 * time.Second

type KafkaPublisher struct {
	writer      *kafka.Writer
	idGenerator func() string
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	idGenerator, err := nanoid.Standard(21)
	if err != nil {
		return nil, fmt.Errorf("failed to create event id generator: %w", err)
	}

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
		idGenerator: idGenerator,
	}, nil
}

func (k *KafkaPublisher) PublishCatalogEvent(ctx context.Context, event domain.CatalogEvent) error {
	msg, err := encodeCatalogEvent(k.idGenerator(), event)
	if err != nil {
		return fmt.Errorf("failed to encode catalog event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}
	return nil
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}
