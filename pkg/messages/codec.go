package messages

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	gametypes "github.com/cbodonnell/bomberman/pkg/game/types"
)

// DecodeFrame decodes a text frame holding either a single envelope or an
// array of envelopes. Objects without a string type are dropped. Any other
// failure discards the whole frame so it is never partially applied.
func DecodeFrame(b []byte) ([]Envelope, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return nil, &DecodeError{Err: errors.New("empty frame")}
	}

	var raws []json.RawMessage
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, &DecodeError{Err: err}
		}
	case '{':
		raws = []json.RawMessage{trimmed}
	default:
		return nil, &DecodeError{Err: fmt.Errorf("unexpected frame start %q", trimmed[0])}
	}

	envelopes := make([]Envelope, 0, len(raws))
	for i, raw := range raws {
		envelope, err := decodeObject(raw)
		if err != nil {
			return nil, &DecodeError{Err: fmt.Errorf("envelope %d: %v", i, err)}
		}
		if envelope != nil {
			envelopes = append(envelopes, envelope)
		}
	}

	return envelopes, nil
}

// decodeObject reads the discriminant first and then decodes the payload into
// the variant's shape. It returns nil, nil for objects without a type.
func decodeObject(raw json.RawMessage) (Envelope, error) {
	msg := Message{}
	if err := json.Unmarshal(raw, &msg); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "type" {
			return nil, nil
		}
		return nil, err
	}
	if msg.Type == "" {
		return nil, nil
	}
	messageType, payload := msg.Type, msg.Payload

	switch messageType {
	case MessageTypeServerAssignID:
		var playerID string
		if err := json.Unmarshal(payload, &playerID); err != nil {
			return nil, fmt.Errorf("failed to decode assign_id payload: %v", err)
		}
		return AssignID{PlayerID: playerID}, nil
	case MessageTypeServerGameState:
		state, err := decodeGameState(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to decode game_state payload: %v", err)
		}
		return GameStateUpdate{State: state}, nil
	case MessageTypeServerExplosion:
		explosion := gametypes.Explosion{}
		if err := json.Unmarshal(payload, &explosion); err != nil {
			return nil, fmt.Errorf("failed to decode explosion_event payload: %v", err)
		}
		return ExplosionEvent{Explosion: explosion}, nil
	default:
		return Unrecognized{Type: messageType, Payload: payload}, nil
	}
}

func decodeGameState(payload json.RawMessage) (*gametypes.GameState, error) {
	if len(payload) == 0 || string(payload) == "null" {
		return nil, errors.New("missing payload")
	}
	state := gametypes.NewGameState("")
	if err := json.Unmarshal(payload, state); err != nil {
		return nil, err
	}
	phase, err := gametypes.ParsePhase(string(state.Phase))
	if err != nil {
		return nil, err
	}
	state.Phase = phase
	if state.Map == nil {
		state.Map = [][]string{}
	}
	if state.Players == nil {
		state.Players = []gametypes.Player{}
	}
	if state.Bombs == nil {
		state.Bombs = []gametypes.Bomb{}
	}
	return state, nil
}

func encode(messageType string, v interface{}) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, &EncodeError{Type: messageType, Err: err}
	}
	return b, nil
}

// EncodeJoin serializes a join request. The color is omitted when nil.
func EncodeJoin(role, name string, color *gametypes.Color) ([]byte, error) {
	return encode(MessageTypeClientJoin, &ClientJoin{
		Type:  MessageTypeClientJoin,
		Role:  role,
		Name:  name,
		Color: color,
	})
}

func EncodeMove(dx, dy int) ([]byte, error) {
	return encode(MessageTypeClientMove, &ClientMove{
		Type: MessageTypeClientMove,
		DX:   dx,
		DY:   dy,
	})
}

func EncodeReady() ([]byte, error) {
	return encode(MessageTypeClientReady, &ClientCommand{Type: MessageTypeClientReady})
}

func EncodePlaceBomb() ([]byte, error) {
	return encode(MessageTypeClientPlaceBomb, &ClientCommand{Type: MessageTypeClientPlaceBomb})
}
