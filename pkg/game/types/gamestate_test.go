package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePhase(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Phase
		wantErr bool
	}{
		{name: "waiting", input: "WAITING", want: PhaseWaiting},
		{name: "in progress", input: "IN_PROGRESS", want: PhaseInProgress},
		{name: "game over", input: "GAME_OVER", want: PhaseGameOver},
		{name: "lower case", input: "waiting", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePhase(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGameState_Copy(t *testing.T) {
	winner := "p1"
	ready := true
	original := &GameState{
		Phase:   PhaseGameOver,
		Winner:  &winner,
		Map:     [][]string{{"#", " "}},
		Players: []Player{{ID: "p1", Alive: true, Ready: &ready, Color: &Color{Red: 1}}},
		Bombs:   []Bomb{{X: 1, Y: 2}},
	}

	copied := original.Copy()
	assert.Equal(t, original, copied)

	*copied.Winner = "p2"
	copied.Map[0][0] = "."
	*copied.Players[0].Ready = false
	copied.Players[0].Color.Red = 0
	copied.Bombs[0].X = 5

	assert.Equal(t, "p1", *original.Winner)
	assert.Equal(t, "#", original.Map[0][0])
	assert.True(t, *original.Players[0].Ready)
	assert.Equal(t, 1.0, original.Players[0].Color.Red)
	assert.Equal(t, 1, original.Bombs[0].X)

	var nilState *GameState
	assert.Nil(t, nilState.Copy())
}

func TestGameState_PlayerAndAliveCount(t *testing.T) {
	state := &GameState{
		Players: []Player{
			{ID: "a", Alive: true},
			{ID: "b", Alive: false},
			{ID: "c", Alive: true},
		},
	}

	p, ok := state.Player("b")
	assert.True(t, ok)
	assert.False(t, p.Alive)

	_, ok = state.Player("z")
	assert.False(t, ok)

	assert.Equal(t, 2, state.AliveCount())
}

func TestBomb_Key(t *testing.T) {
	assert.Equal(t, "3-7", Bomb{X: 3, Y: 7}.Key())
}

func TestColor_Equal(t *testing.T) {
	base := Color{Red: 1, Green: 0, Blue: 0}
	assert.True(t, base.Equal(Color{Red: 0.995, Green: 0.005, Blue: 0}))
	assert.False(t, base.Equal(Color{Red: 0.99, Green: 0, Blue: 0}))
	assert.False(t, base.Equal(Color{Red: 1, Green: 0, Blue: 0.5}))
}

func TestColor_Valid(t *testing.T) {
	assert.True(t, Color{Red: 1, Green: 0.5}.Valid())
	assert.False(t, Color{Red: 1.2}.Valid())
	assert.False(t, Color{Blue: -0.1}.Valid())
	assert.False(t, Color{Green: math.NaN()}.Valid())
}

func TestParseGrid(t *testing.T) {
	grid := ParseGrid([][]string{
		{"#", ".", " ", "p"},
		{"?", "#"},
	})

	assert.Equal(t, 2, grid.Rows())
	assert.Equal(t, 4, grid.Cols())
	assert.Equal(t, []TileType{TileWall, TileBrick, TileEmpty, TileSpawn}, grid[0])
	assert.Equal(t, TileEmpty, grid[1][0])

	assert.Equal(t, 0, ParseGrid(nil).Cols())
}
