package domain

import "time"

// EventType represents the type of game event
type EventType string

const (
	EventStateChanged EventType = "STATE_CHANGED"
	EventRoomClosed   EventType = "ROOM_CLOSED"
)

// GameEvent represents an event that occurred in the game
type GameEvent struct {
	Type      EventType   `json:"type"`
	GameID    string      `json:"gameId"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a new game event
func NewEvent(eventType EventType, gameID string, payload interface{}, at time.Time) *GameEvent {
	return &GameEvent{
		Type:      eventType,
		GameID:    gameID,
		Payload:   payload,
		Timestamp: at,
	}
}

// StateChangedPayload is sent after every dispatched action
type StateChangedPayload struct {
	Action ActionType `json:"action"`
	State  GameState  `json:"state"`
}
