package main

import (
	"context"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/aaguilard28/cv-areli/adapters/event"
	"github.com/aaguilard28/cv-areli/adapters/persistence"
	auditUC "github.com/aaguilard28/cv-areli/internal/application/usecase/audit"
	"github.com/aaguilard28/cv-areli/internal/config"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

// The worker tails both event topics and records every message into the
// Postgres audit trail, so state changes remain inspectable after the fact.
func main() {
	fmt.Println("Starting CV Areli Worker...")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	dbPool, err := persistence.NewPostgresPool(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	auditRepo := persistence.NewPostgresAuditRepo(dbPool, appLogger)
	recordUC := auditUC.NewRecordUseCase(auditRepo, appLogger)

	ctx := context.Background()
	go consumeTopic(ctx, cfg, event.TopicConfigEvents, recordUC)
	consumeTopic(ctx, cfg, event.TopicVersionEvents, recordUC)
}

func consumeTopic(ctx context.Context, cfg config.Config, topic string, uc *auditUC.RecordUseCase) {
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    topic,
		GroupID:  "audit-recorder-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	log.Printf("Worker listening on topic '%s'...", topic)

	for {
		msg, err := consumer.FetchMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		log.Printf("Received message from [Topic: %s], [Key: %s]", msg.Topic, string(msg.Key))

		if err := uc.Execute(ctx, msg.Topic, msg.Value); err != nil {
			log.Printf("ERROR: Failed to record event from %s: %v. Skipping.", msg.Topic, err)
			commitMessage(consumer, msg)
			continue
		}

		commitMessage(consumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
