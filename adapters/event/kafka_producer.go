package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/aaguilard28/cv-areli/internal/application/service"
	"github.com/aaguilard28/cv-areli/internal/config"
)

const (
	TopicVersionEvents = "cv.version.events"
	TopicConfigEvents  = "cv.config.events"
)

type KafkaProducerClient struct {
	VersionEventsWriter *kafka.Writer
	ConfigEventsWriter  *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	versionWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicVersionEvents,
		Balancer: &kafka.LeastBytes{},
	}

	configWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicConfigEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		VersionEventsWriter: versionWriter,
		ConfigEventsWriter:  configWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishVersionEvent(ctx context.Context, evt service.StateEvent) error {
	return publish(ctx, c.VersionEventsWriter, evt)
}

func (c *KafkaProducerClient) PublishConfigEvent(ctx context.Context, evt service.StateEvent) error {
	return publish(ctx, c.ConfigEventsWriter, evt)
}

func publish(ctx context.Context, w *kafka.Writer, evt service.StateEvent) error {
	value, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(evt.EventType),
		Value: value,
	}
	if err := w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write event %s: %w", evt.EventType, err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.VersionEventsWriter != nil {
		c.VersionEventsWriter.Close()
	}
	if c.ConfigEventsWriter != nil {
		c.ConfigEventsWriter.Close()
	}
}
