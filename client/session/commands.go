package session

import (
	"context"
	"errors"

	gametypes "github.com/cbodonnell/bomberman/pkg/game/types"
	"github.com/cbodonnell/bomberman/pkg/messages"
)

var (
	ErrCommandNotAllowed = errors.New("command not allowed in the current phase")
	ErrRateLimited       = errors.New("command rate limited")
)

// Move asks the server to move the local player by one tile.
func (s *Session) Move(ctx context.Context, dx, dy int) error {
	return s.command(ctx, "move", gametypes.PhaseInProgress, true, func() ([]byte, error) {
		return messages.EncodeMove(dx, dy)
	})
}

func (s *Session) PlaceBomb(ctx context.Context) error {
	return s.command(ctx, "place_bomb", gametypes.PhaseInProgress, true, messages.EncodePlaceBomb)
}

// Ready marks the local player ready in the lobby.
func (s *Session) Ready(ctx context.Context) error {
	return s.command(ctx, "ready", gametypes.PhaseWaiting, false, messages.EncodeReady)
}

func (s *Session) command(ctx context.Context, name string, phase gametypes.Phase, limited bool, encode func() ([]byte, error)) error {
	var result error
	if err := s.call(ctx, func() {
		result = s.sendCommand(name, phase, limited, encode)
	}); err != nil {
		return err
	}
	return result
}

func (s *Session) sendCommand(name string, phase gametypes.Phase, limited bool, encode func() ([]byte, error)) error {
	if s.phase != phase || s.reconnecting {
		s.logger.Trace("Dropping %s command while %s", name, s.phase)
		return ErrCommandNotAllowed
	}
	if limited && !s.limiter.Allow() {
		return ErrRateLimited
	}
	payload, err := encode()
	if err != nil {
		return err
	}
	return s.transport.Send(payload)
}
