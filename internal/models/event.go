package models

import (
	"time"

	"github.com/google/uuid"
)

// Mutation event actions published after successful writes.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// MutationEvent describes a completed write against one resource collection.
type MutationEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Resource   string    `json:"resource"` // "users" or "signatures"
	Action     string    `json:"action"`
	RecordID   int64     `json:"record_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
