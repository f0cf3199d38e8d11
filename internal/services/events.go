package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/srosales/sigboard/internal/logger"
	"github.com/srosales/sigboard/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishMutation publishes a mutation event to Kafka. Publishing is best
// effort: a failed or absent writer never fails the originating request.
func publishMutation(ctx context.Context, w KafkaWriter, resource, action string, recordID int64) {
	if w == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing",
			"resource", resource, "action", action, "record_id", recordID)
		return
	}

	event := models.MutationEvent{
		EventID:    uuid.New(),
		Resource:   resource,
		Action:     action,
		RecordID:   recordID,
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal mutation event", "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(resource),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish mutation event",
			"resource", resource, "action", action, "record_id", recordID, "err", err)
		return
	}

	logger.Log.Infow("mutation event published",
		"event_id", event.EventID, "resource", resource, "action", action, "record_id", recordID)
}
