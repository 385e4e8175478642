package session

import (
	gametypes "github.com/cbodonnell/bomberman/pkg/game/types"
)

// applySnapshot replaces the stored snapshot and advances the round marker
// when play starts from any other phase.
func (s *Session) applySnapshot(state *gametypes.GameState) {
	if state == nil {
		return
	}
	priorSessionPhase := s.phase

	isNewRound := state.Phase == gametypes.PhaseInProgress && s.previousPhase != gametypes.PhaseInProgress
	s.previousPhase = state.Phase

	s.state = state
	if isNewRound {
		s.round++
	}
	publish(s.events.Snapshots, "snapshot", SnapshotUpdated{State: state.Copy(), Round: s.round})
	if isNewRound {
		s.logger.Info("Round %d started", s.round)
		publish(s.events.MapResets, "map reset", MapReset{Round: s.round})
	}

	s.setPhase(state.Phase)

	if s.reconnecting && state.Phase == gametypes.PhaseWaiting && priorSessionPhase == gametypes.PhaseConnecting {
		s.logger.Info("Reconnected as %s", s.playerID)
		s.setReconnecting(false)
	}
}
