package types

import "fmt"

// Phase is the externally observable session phase.
type Phase string

const (
	PhaseConnecting Phase = "CONNECTING"
	PhaseWaiting    Phase = "WAITING"
	PhaseInProgress Phase = "IN_PROGRESS"
	PhaseGameOver   Phase = "GAME_OVER"
)

func (p Phase) String() string {
	return string(p)
}

// ParsePhase validates a phase received from the server.
func ParsePhase(s string) (Phase, error) {
	switch Phase(s) {
	case PhaseConnecting, PhaseWaiting, PhaseInProgress, PhaseGameOver:
		return Phase(s), nil
	default:
		return "", fmt.Errorf("unknown phase: %q", s)
	}
}

// GameState is the authoritative world snapshot sent by the server.
// Each snapshot fully replaces the previous one.
type GameState struct {
	Phase Phase `json:"state"`
	// Winner is the winning player, or a draw marker chosen by the server
	Winner *string `json:"winner,omitempty"`
	// TimeRemaining is the number of seconds left in the round
	TimeRemaining *float64   `json:"time_remaining,omitempty"`
	Map           [][]string `json:"map"`
	Players       []Player   `json:"players"`
	Bombs         []Bomb     `json:"bombs"`
}

// NewGameState returns an empty snapshot in the given phase.
func NewGameState(phase Phase) *GameState {
	return &GameState{
		Phase:   phase,
		Map:     [][]string{},
		Players: []Player{},
		Bombs:   []Bomb{},
	}
}

// Copy returns a deep copy of the snapshot.
func (g *GameState) Copy() *GameState {
	if g == nil {
		return nil
	}
	newGameState := &GameState{
		Phase:   g.Phase,
		Map:     make([][]string, len(g.Map)),
		Players: make([]Player, len(g.Players)),
		Bombs:   make([]Bomb, len(g.Bombs)),
	}
	if g.Winner != nil {
		winner := *g.Winner
		newGameState.Winner = &winner
	}
	if g.TimeRemaining != nil {
		remaining := *g.TimeRemaining
		newGameState.TimeRemaining = &remaining
	}
	for i, row := range g.Map {
		newGameState.Map[i] = append([]string(nil), row...)
	}
	for i, player := range g.Players {
		newGameState.Players[i] = player.Copy()
	}
	copy(newGameState.Bombs, g.Bombs)
	return newGameState
}

// Grid parses the map symbols into tiles.
func (g *GameState) Grid() Grid {
	return ParseGrid(g.Map)
}

// Player returns the player with the given id.
func (g *GameState) Player(id string) (Player, bool) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// AliveCount returns the number of living players.
func (g *GameState) AliveCount() int {
	count := 0
	for _, p := range g.Players {
		if p.Alive {
			count++
		}
	}
	return count
}

// Bomb is a bomb on the map. The server guarantees at most one per cell.
type Bomb struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Key identifies the bomb by its cell.
func (b Bomb) Key() string {
	return fmt.Sprintf("%d-%d", b.X, b.Y)
}

// Coordinate is a map cell.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Explosion lists the cells hit by a single explosion.
type Explosion struct {
	Cells []Coordinate `json:"cells"`
}
