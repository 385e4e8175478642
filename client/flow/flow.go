package flow

import (
	"fmt"
	"math"

	"github.com/cbodonnell/bomberman/client/session"
	gametypes "github.com/cbodonnell/bomberman/pkg/game/types"
)

type GameMode int

const (
	GameModeConnecting GameMode = iota
	GameModeLobby
	GameModePlay
	GameModeOver
	GameModeReconnecting
)

func (m GameMode) String() string {
	switch m {
	case GameModeConnecting:
		return "Connecting"
	case GameModeLobby:
		return "Lobby"
	case GameModePlay:
		return "Play"
	case GameModeOver:
		return "Over"
	case GameModeReconnecting:
		return "Reconnecting"
	}
	return "Unknown"
}

// ModeFor maps the session phase to the screen shown. Reconnecting hides
// the phase until the new connection is admitted.
func ModeFor(phase gametypes.Phase, reconnecting bool) GameMode {
	if reconnecting {
		return GameModeReconnecting
	}
	switch phase {
	case gametypes.PhaseWaiting:
		return GameModeLobby
	case gametypes.PhaseInProgress:
		return GameModePlay
	case gametypes.PhaseGameOver:
		return GameModeOver
	default:
		return GameModeConnecting
	}
}

// Banner is the status line for the view.
func Banner(v *session.View) string {
	switch ModeFor(v.Phase, v.Reconnecting) {
	case GameModeReconnecting:
		return "Reconnecting..."
	case GameModeLobby:
		ready := 0
		for _, p := range v.State.Players {
			if p.IsReady() {
				ready++
			}
		}
		return fmt.Sprintf("Waiting for players (%d/%d ready) - press R when ready", ready, len(v.State.Players))
	case GameModePlay:
		if v.State.TimeRemaining != nil {
			return fmt.Sprintf("Round %d - %ds left", v.Round, int(math.Ceil(*v.State.TimeRemaining)))
		}
		return fmt.Sprintf("Round %d", v.Round)
	case GameModeOver:
		return "Game over - " + winnerText(v.State)
	default:
		if !v.Connected && v.Generation > 0 && v.JoinsSent == 0 {
			return "Connecting to server..."
		}
		return "Joining..."
	}
}

func winnerText(state *gametypes.GameState) string {
	if state.Winner == nil || *state.Winner == "" {
		return "draw"
	}
	if p, ok := state.Player(*state.Winner); ok && p.Name != "" {
		return p.Name + " wins"
	}
	return *state.Winner + " wins"
}
