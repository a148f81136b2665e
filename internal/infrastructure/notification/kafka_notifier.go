package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"loja_merch/internal/domain/entities"
	"loja_merch/internal/infrastructure/observability"
	"loja_merch/internal/usecase/interfaces"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func InitProducer(brokers []string, logger *zap.Logger) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Info("Kafka producer initialized", zap.Strings("brokers", brokers))
	return producer, nil
}

// KafkaNotifier publishes status change email requests for the email
// service to consume. Messages are keyed by order id.
type KafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
	logger   *zap.Logger
}

var _ interfaces.INotifier = (*KafkaNotifier)(nil)

func NewKafkaNotifier(producer sarama.SyncProducer, topic string, logger *zap.Logger) *KafkaNotifier {
	return &KafkaNotifier{producer: producer, topic: topic, logger: observability.OrNop(logger)}
}

func (n *KafkaNotifier) SendStatusChangeEmail(ctx context.Context, order entities.Order) error {
	return record(n.send(ctx, order))
}

func (n *KafkaNotifier) send(ctx context.Context, order entities.Order) error {
	email, err := newStatusChangeEmail(order)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(order.ID),
		Value: sarama.ByteEncoder(payload),
	}

	carrier := make(saramaHeaderCarrier, 0)
	otel.GetTextMapPropagator().Inject(ctx, &carrier)
	msg.Headers = []sarama.RecordHeader(carrier)

	partition, offset, err := n.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	traceID := ""
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		traceID = sc.TraceID().String()
	}
	n.logger.Info("status change email requested",
		zap.String("trace_id", traceID),
		zap.String("order_id", order.ID),
		zap.String("topic", n.topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

// saramaHeaderCarrier adapts Kafka record headers to a TextMapCarrier.
type saramaHeaderCarrier []sarama.RecordHeader

func (c saramaHeaderCarrier) Get(key string) string {
	for _, h := range c {
		if string(h.Key) == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *saramaHeaderCarrier) Set(key, value string) {
	*c = append(*c, sarama.RecordHeader{Key: []byte(key), Value: []byte(value)})
}

func (c saramaHeaderCarrier) Keys() []string {
	keys := make([]string, len(c))
	for i, h := range c {
		keys[i] = string(h.Key)
	}
	return keys
}
