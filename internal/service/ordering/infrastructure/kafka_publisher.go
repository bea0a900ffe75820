// internal/service/ordering/infrastructure/kafka_publisher.go
package infrastructure

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"algashop/internal/service/ordering/domain"
)

// NewEventsWriter 创建指向事件主题的 Kafka 生产者。
// 以聚合标识为分区键，保证同一聚合的事件按序投递。
func NewEventsWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
}

// KafkaEventPublisher 是 EventPublisher 端口的 Kafka 实现。
type KafkaEventPublisher struct {
	writer *kafka.Writer
}

func NewKafkaEventPublisher(writer *kafka.Writer) *KafkaEventPublisher {
	return &KafkaEventPublisher{writer: writer}
}

func (p *KafkaEventPublisher) Publish(ctx context.Context, event domain.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal domain event")
	}
	message := kafka.Message{
		Key:   []byte(event.AggregateID()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event.EventName())},
		},
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return errors.Wrapf(err, "publish %s", event.EventName())
	}
	log.Debug().
		Str("event", event.EventName()).
		Str("aggregate_id", event.AggregateID()).
		Msg("domain event published")
	return nil
}

// NopEventPublisher 丢弃所有事件，用于测试与本地运行。
type NopEventPublisher struct{}

func (NopEventPublisher) Publish(context.Context, domain.DomainEvent) error { return nil }
