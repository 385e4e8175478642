package messages

import (
	"encoding/json"
	"math"
	"testing"

	gametypes "github.com/cbodonnell/bomberman/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFrame(t *testing.T) {
	tests := []struct {
		name      string
		frame     string
		wantTypes []string
		wantErr   bool
	}{
		{
			name:      "single assign id",
			frame:     `{"type":"assign_id","payload":"p42"}`,
			wantTypes: []string{MessageTypeServerAssignID},
		},
		{
			name:      "batch",
			frame:     `[{"type":"assign_id","payload":"p1"},{"type":"explosion_event","payload":{"cells":[{"x":1,"y":2}]}}]`,
			wantTypes: []string{MessageTypeServerAssignID, MessageTypeServerExplosion},
		},
		{
			name:      "object without type is dropped",
			frame:     `[{"payload":"p1"},{"type":"assign_id","payload":"p2"},{"type":7}]`,
			wantTypes: []string{MessageTypeServerAssignID},
		},
		{
			name:      "unknown type is unrecognized",
			frame:     `{"type":"chat","payload":{"text":"hi"}}`,
			wantTypes: []string{"chat"},
		},
		{
			name:      "empty batch",
			frame:     `[]`,
			wantTypes: []string{},
		},
		{
			name:    "malformed json",
			frame:   `{not json`,
			wantErr: true,
		},
		{
			name:    "scalar frame",
			frame:   `42`,
			wantErr: true,
		},
		{
			name:    "empty frame",
			frame:   "  ",
			wantErr: true,
		},
		{
			name:    "bad payload discards whole batch",
			frame:   `[{"type":"assign_id","payload":"p1"},{"type":"game_state","payload":{"state":"BOGUS"}}]`,
			wantErr: true,
		},
		{
			name:    "array element not an object",
			frame:   `[{"type":"assign_id","payload":"p1"}, 3]`,
			wantErr: true,
		},
		{
			name:    "assign id payload not a string",
			frame:   `{"type":"assign_id","payload":5}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeFrame([]byte(tt.frame))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsDecodeError(err))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			gotTypes := make([]string, 0, len(got))
			for _, e := range got {
				gotTypes = append(gotTypes, e.MessageType())
			}
			assert.Equal(t, tt.wantTypes, gotTypes)
		})
	}
}

func TestDecodeFrame_GameState(t *testing.T) {
	frame := `{"type":"game_state","payload":{"state":"IN_PROGRESS","winner":null,"time_remaining":87.5,` +
		`"map":[["#","#"],[" ","p"]],` +
		`"players":[{"id":"p1","x":1,"y":1,"name":"Alice","alive":true,"ready":true,"color":{"red":1,"green":0,"blue":0}},` +
		`{"id":"p2","x":2,"y":1,"name":"Bob","alive":false}],` +
		`"bombs":[{"x":3,"y":4}]}}`

	got, err := DecodeFrame([]byte(frame))
	require.NoError(t, err)
	require.Len(t, got, 1)

	update, ok := got[0].(GameStateUpdate)
	require.True(t, ok)
	state := update.State
	assert.Equal(t, gametypes.PhaseInProgress, state.Phase)
	assert.Nil(t, state.Winner)
	require.NotNil(t, state.TimeRemaining)
	assert.Equal(t, 87.5, *state.TimeRemaining)
	assert.Equal(t, [][]string{{"#", "#"}, {" ", "p"}}, state.Map)
	require.Len(t, state.Players, 2)
	assert.True(t, state.Players[0].IsReady())
	assert.Equal(t, &gametypes.Color{Red: 1}, state.Players[0].Color)
	assert.Nil(t, state.Players[1].Ready)
	assert.Nil(t, state.Players[1].Color)
	assert.Equal(t, []gametypes.Bomb{{X: 3, Y: 4}}, state.Bombs)
}

func TestDecodeFrame_GameStateDefaultsEmptyCollections(t *testing.T) {
	got, err := DecodeFrame([]byte(`{"type":"game_state","payload":{"state":"WAITING"}}`))
	require.NoError(t, err)
	require.Len(t, got, 1)

	state := got[0].(GameStateUpdate).State
	assert.NotNil(t, state.Map)
	assert.NotNil(t, state.Players)
	assert.NotNil(t, state.Bombs)
}

func TestDecodeFrame_Explosion(t *testing.T) {
	got, err := DecodeFrame([]byte(`{"type":"explosion_event","payload":{"cells":[{"x":1,"y":2},{"x":2,"y":2}]}}`))
	require.NoError(t, err)
	require.Len(t, got, 1)

	event := got[0].(ExplosionEvent)
	assert.Equal(t, []gametypes.Coordinate{{X: 1, Y: 2}, {X: 2, Y: 2}}, event.Explosion.Cells)
}

func TestEncodeJoin(t *testing.T) {
	tests := []struct {
		name  string
		role  string
		pname string
		color *gametypes.Color
		want  string
	}{
		{
			name:  "with color",
			role:  RolePlayer,
			pname: "Alice",
			color: &gametypes.Color{Red: 1, Green: 0.5, Blue: 0},
			want:  `{"type":"join","role":"player","name":"Alice","color":{"red":1,"green":0.5,"blue":0}}`,
		},
		{
			name:  "without color",
			role:  RoleSpectator,
			pname: "",
			want:  `{"type":"join","role":"spectator","name":""}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := EncodeJoin(tt.role, tt.pname, tt.color)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}

func TestEncodeJoin_InvalidColor(t *testing.T) {
	_, err := EncodeJoin(RolePlayer, "Alice", &gametypes.Color{Red: math.NaN()})
	require.Error(t, err)
	assert.True(t, IsEncodeError(err))
}

func TestEncodeCommands(t *testing.T) {
	move, err := EncodeMove(-1, 0)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"move","dx":-1,"dy":0}`, string(move))

	ready, err := EncodeReady()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"ready"}`, string(ready))

	bomb, err := EncodePlaceBomb()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"place_bomb"}`, string(bomb))

	msg := &Message{}
	require.NoError(t, json.Unmarshal(bomb, msg))
	assert.Equal(t, MessageTypeClientPlaceBomb, msg.Type)
}
