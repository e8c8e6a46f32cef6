package util

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"rostipos/pkg/logger"
	"rostipos/pkg/metrics"
)

type kafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

// NewKafkaProducer builds a producer for the pedido events topic.
func NewKafkaProducer(brokers []string, topic string) MessagePublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info().Str("topic", topic).Msg("Kafka producer ready")
	return &kafkaProducer{writer: writer, topic: topic}
}

func (p *kafkaProducer) PublishMessage(ctx context.Context, key string, value []byte) error {
	timer := metrics.NewKafkaProduceTimer(serviceNameForMetrics, p.topic)

	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
	if err != nil {
		timer.Error()
		return fmt.Errorf("failed to publish message to %s: %w", p.topic, err)
	}

	timer.Success()
	return nil
}

func (p *kafkaProducer) Close() error {
	return p.writer.Close()
}
