package session

import (
	"context"
	"errors"

	gametypes "github.com/cbodonnell/bomberman/pkg/game/types"
	"github.com/cbodonnell/bomberman/pkg/identity"
)

var (
	ErrReconnectInProgress = errors.New("reconnection already in progress")
	ErrReconnectNotAllowed = errors.New("reconnection is only allowed while waiting in the lobby")
)

// RequestReconnect tears down the connection and rejoins with the stored
// identity. It is rejected unless the session is waiting in the lobby.
func (s *Session) RequestReconnect(ctx context.Context) error {
	var result error
	if err := s.call(ctx, func() {
		result = s.beginReconnect()
	}); err != nil {
		return err
	}
	return result
}

// UpdateIdentity saves next and reconnects when it differs from the current
// identity. It reports whether a reconnect was started.
func (s *Session) UpdateIdentity(ctx context.Context, next identity.Identity) (bool, error) {
	var (
		started bool
		result  error
	)
	if err := s.call(ctx, func() {
		started, result = s.updateIdentity(ctx, next)
	}); err != nil {
		return false, err
	}
	return started, result
}

func (s *Session) updateIdentity(ctx context.Context, next identity.Identity) (bool, error) {
	next = next.Normalized()
	if next.Name == "" {
		next.Name = s.identity.Name
	}
	if next.Color == nil {
		next.Color = s.identity.Color
	}
	if !identity.Changed(s.identity, next) {
		s.logger.Debug("Identity unchanged, not reconnecting")
		return false, nil
	}
	if s.identities != nil {
		if err := s.identities.Save(ctx, next); err != nil {
			return false, err
		}
	}
	if s.role != "" {
		next.Role = s.role
	}
	s.identity = next
	if err := s.beginReconnect(); err != nil {
		s.logger.Info("Identity saved, it will be used on the next join: %v", err)
		return false, nil
	}
	return true, nil
}

func (s *Session) beginReconnect() error {
	if s.reconnecting {
		s.logger.Info("Ignoring reconnect request: %v", ErrReconnectInProgress)
		return ErrReconnectInProgress
	}
	if s.phase != gametypes.PhaseWaiting {
		s.logger.Info("Ignoring reconnect request while %s", s.phase)
		return ErrReconnectNotAllowed
	}

	s.reconnectEpoch++
	epoch := s.reconnectEpoch
	s.setReconnecting(true)
	s.logger.Info("Reconnecting (attempt %d)", epoch)

	s.playerID = ""
	s.state = gametypes.NewGameState(s.phase)
	s.transport.Disconnect()
	s.generation = 0
	s.connected = false

	s.scheduler.AfterFunc(s.timing.SettleDelay, func() {
		s.reenter(epoch)
	})
	return nil
}

// reenter runs after the settle delay and opens the new connection.
func (s *Session) reenter(epoch uint64) {
	if epoch != s.reconnectEpoch || !s.reconnecting {
		return
	}
	s.connect(s.ctx)
	s.setPhase(gametypes.PhaseConnecting)
	s.scheduler.AfterFunc(s.timing.WatchdogTimeout, func() {
		s.watchdog(epoch)
	})
}

// watchdog always ends the reconnection. It falls back to WAITING only when
// the session is still CONNECTING.
func (s *Session) watchdog(epoch uint64) {
	if epoch != s.reconnectEpoch || !s.reconnecting {
		return
	}
	if s.phase == gametypes.PhaseConnecting || s.playerID == "" {
		s.logger.Warn("Reconnection timed out (phase %s, player id %q)", s.phase, s.playerID)
		s.setReconnecting(false)
		if s.phase == gametypes.PhaseConnecting {
			s.setPhase(gametypes.PhaseWaiting)
		}
		return
	}
	// Admitted and past CONNECTING: the flag is cleared and the phase is kept.
	s.logger.Info("Reconnection finished without a lobby snapshot (phase %s)", s.phase)
	s.setReconnecting(false)
}
