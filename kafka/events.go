package kafka

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event is a domain event emitted after a checklist or favorite operation commits
type Event struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	UserID      uint      `json:"user_id"`
	ChecklistID uint      `json:"checklist_id,omitempty"`
	ReviewID    uint      `json:"review_id,omitempty"`
	Liked       bool      `json:"liked,omitempty"`
	Likes       int       `json:"likes,omitempty"`
	Items       int       `json:"items,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeChecklistCreated  = "checklist.created"
	EventTypeChecklistDeleted  = "checklist.deleted"
	EventTypeChecklistEdited   = "checklist.edited"
	EventTypeChecklistShared   = "checklist.shared"
	EventTypeChecklistUnshared = "checklist.unshared"
	EventTypeFavoriteToggled   = "favorite.toggled"
)

// Kafka topics
const (
	TopicChecklistEvents = "checklist-events"
	TopicFavoriteEvents  = "favorite-events"
)

// AllTopics lists every topic the service publishes to
var AllTopics = []string{TopicChecklistEvents, TopicFavoriteEvents}

// NewEvent stamps a fresh id and timestamp on an event of the given type
func NewEvent(eventType string, userID uint) Event {
	return Event{
		EventID:   uuid.NewString(),
		EventType: eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
	}
}

// Topic returns the topic an event is published to
func (e Event) Topic() string {
	if e.EventType == EventTypeFavoriteToggled {
		return TopicFavoriteEvents
	}
	return TopicChecklistEvents
}

// Key partitions events so that all events of one entity keep their order
func (e Event) Key() string {
	if e.ReviewID != 0 {
		return fmt.Sprintf("review_%d", e.ReviewID)
	}
	return fmt.Sprintf("checklist_%d", e.ChecklistID)
}
