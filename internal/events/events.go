package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Streams
const StreamSessions = "events:session"

// Event types
const (
	EventSessionStateChanged = "session_state_changed"
	EventSessionExpired      = "session_expired"
)

type Event struct {
	Type      string         `json:"type"`
	SessionID uuid.UUID      `json:"session_id"`
	At        time.Time      `json:"at"`
	Payload   map[string]any `json:"payload,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
