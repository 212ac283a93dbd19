package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamAttractionsUpdated  = "stream:attractions:updated"
	StreamStatisticsRefreshed = "stream:statistics:refreshed"
)

// AttractionsUpdatedEvent - админ-панель загрузила новый набор объектов
type AttractionsUpdatedEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	Source    string    `json:"source"`
	Reason    *string   `json:"reason,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatisticsRefreshedEvent - статистика пересчитана
type StatisticsRefreshedEvent struct {
	Version       uuid.UUID `json:"version"`
	ComputedAt    time.Time `json:"computed_at"`
	TotalObjects  int       `json:"total_objects"`
	ExcludedCount int       `json:"excluded_count"`
	Trigger       string    `json:"trigger"`
	Error         string    `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
