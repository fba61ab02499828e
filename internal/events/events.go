package events

import (
	"context"
	"encoding/json"
	"time"
)

// Event types emitted by a room.
const (
	TypeMoveMade     = "move_made"
	TypeGameOver     = "game_over"
	TypeModeChanged  = "mode_changed"
	TypeLevelChanged = "level_changed"
	TypeGameReset    = "game_reset"
)

// Event represents a message published by a room to its listeners.
type Event struct {
	Type    string          `json:"event"`
	RoomID  string          `json:"room_id"`
	At      time.Time       `json:"at"`
	Payload json.RawMessage `json:"payload"`
}

// MoveMadePayload is the payload for the "move_made" event.
type MoveMadePayload struct {
	Mark string `json:"mark"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	ByAI bool   `json:"by_ai"`
}

// GameOverPayload is the payload for the "game_over" event.
type GameOverPayload struct {
	Mode    string `json:"mode"`
	Level   int    `json:"level"`
	Outcome string `json:"outcome"`
	Winner  string `json:"winner"`
	Moves   int    `json:"moves"`
	Board   string `json:"board"`
}

// ModeChangedPayload is the payload for the "mode_changed" event.
type ModeChangedPayload struct {
	Mode string `json:"mode"`
}

// LevelChangedPayload is the payload for the "level_changed" event.
type LevelChangedPayload struct {
	Level int `json:"level"`
}

// GameResetPayload is the payload for the "game_reset" event.
type GameResetPayload struct {
	PreviousRoomID string `json:"previous_room_id"`
}

// New marshals payload into an Event.
func New(eventType, roomID string, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: eventType, RoomID: roomID, At: time.Now().UTC(), Payload: raw}, nil
}

// Decode unmarshals the payload into v.
func (e Event) Decode(v any) error {
	return json.Unmarshal(e.Payload, v)
}

// Listener receives room events. Publish must not block for long; rooms
// call it synchronously.
type Listener interface {
	Publish(ctx context.Context, event Event) error
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(ctx context.Context, event Event) error

func (f ListenerFunc) Publish(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Fanout delivers every event to each listener, returning the first error.
type Fanout []Listener

func (f Fanout) Publish(ctx context.Context, event Event) error {
	var firstErr error
	for _, l := range f {
		if l == nil {
			continue
		}
		if err := l.Publish(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
