package events

import (
	"time"

	"github.com/spec-kit/post-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPostCreated EventType = "post_created"
	EventPostUpdated EventType = "post_updated"
	EventPostDeleted EventType = "post_deleted"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	PostID    string    `json:"post_id"`
	Actor     Actor     `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}
