package session

import (
	"time"

	gametypes "github.com/cbodonnell/bomberman/pkg/game/types"
	"github.com/cbodonnell/bomberman/pkg/identity"
	"github.com/cbodonnell/bomberman/pkg/messages"
)

// startJoin schedules the join attempts for one connect cycle. Attempt k
// fires k intervals after the call and every attempt sends the identity held
// when the cycle started.
func (s *Session) startJoin(generation uint64) {
	id := s.identity
	for attempt := 1; attempt <= s.timing.JoinAttempts; attempt++ {
		attempt := attempt
		s.scheduler.AfterFunc(time.Duration(attempt)*s.timing.JoinInterval, func() {
			s.joinAttempt(generation, attempt, id)
		})
	}
}

func (s *Session) joinEligible() bool {
	return s.phase == gametypes.PhaseConnecting || s.reconnecting
}

func (s *Session) joinAttempt(generation uint64, attempt int, id identity.Identity) {
	if generation != s.generation {
		s.logger.Debug("Skipping join attempt %d/%d for superseded generation %d", attempt, s.timing.JoinAttempts, generation)
		return
	}
	if !s.joinEligible() {
		s.logger.Debug("Skipping join attempt %d/%d, session is %s", attempt, s.timing.JoinAttempts, s.phase)
		return
	}

	payload, err := messages.EncodeJoin(id.JoinRole(), id.Name, id.Color)
	if err != nil {
		s.logger.Warn("Failed to encode join attempt %d/%d: %v", attempt, s.timing.JoinAttempts, err)
		return
	}
	if err := s.transport.Send(payload); err != nil {
		s.logger.Debug("Join attempt %d/%d not sent: %v", attempt, s.timing.JoinAttempts, err)
		return
	}
	s.joinsSent++
	s.logger.Info("Sent join request as %s (attempt %d/%d)", id.Name, attempt, s.timing.JoinAttempts)
}
