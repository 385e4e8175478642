package messages

import (
	"encoding/json"

	gametypes "github.com/cbodonnell/bomberman/pkg/game/types"
)

// Message types
const (
	MessageTypeClientJoin      = "join"
	MessageTypeClientMove      = "move"
	MessageTypeClientReady     = "ready"
	MessageTypeClientPlaceBomb = "place_bomb"
	MessageTypeServerAssignID  = "assign_id"
	MessageTypeServerGameState = "game_state"
	MessageTypeServerExplosion = "explosion_event"
)

// Join roles
const (
	RolePlayer    = "player"
	RoleSpectator = "spectator"
)

// Message is the generic wire envelope.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ClientJoin asks the server to admit the client into the session.
type ClientJoin struct {
	Type  string           `json:"type"`
	Role  string           `json:"role"`
	Name  string           `json:"name"`
	Color *gametypes.Color `json:"color,omitempty"`
}

type ClientMove struct {
	Type string `json:"type"`
	DX   int    `json:"dx"`
	DY   int    `json:"dy"`
}

// ClientCommand is a request without parameters, e.g. ready or place_bomb.
type ClientCommand struct {
	Type string `json:"type"`
}

// Envelope is a decoded server message.
type Envelope interface {
	MessageType() string
}

// AssignID carries the id the server assigned to this client.
type AssignID struct {
	PlayerID string
}

func (AssignID) MessageType() string { return MessageTypeServerAssignID }

// GameStateUpdate carries a full snapshot.
type GameStateUpdate struct {
	State *gametypes.GameState
}

func (GameStateUpdate) MessageType() string { return MessageTypeServerGameState }

type ExplosionEvent struct {
	Explosion gametypes.Explosion
}

func (ExplosionEvent) MessageType() string { return MessageTypeServerExplosion }

// Unrecognized is an envelope with a type this client does not handle.
type Unrecognized struct {
	Type    string
	Payload json.RawMessage
}

func (u Unrecognized) MessageType() string { return u.Type }
