package session

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cbodonnell/bomberman/client/network"
	gametypes "github.com/cbodonnell/bomberman/pkg/game/types"
	"github.com/cbodonnell/bomberman/pkg/identity"
	"github.com/cbodonnell/bomberman/pkg/log"
	"github.com/cbodonnell/bomberman/pkg/messages"
	"golang.org/x/time/rate"
)

// IdentityStore loads and saves the player identity.
type IdentityStore interface {
	Load(ctx context.Context) (identity.Identity, error)
	Save(ctx context.Context, id identity.Identity) error
}

// Timing holds the handshake and reconnection delays.
type Timing struct {
	JoinAttempts    int
	JoinInterval    time.Duration
	SettleDelay     time.Duration
	WatchdogTimeout time.Duration
}

var DefaultTiming = Timing{
	JoinAttempts:    3,
	JoinInterval:    time.Second,
	SettleDelay:     4 * time.Second,
	WatchdogTimeout: 15 * time.Second,
}

// Session owns the connection lifecycle and the latest server snapshot.
// All fields below the channels are owned by the goroutine running Run.
type Session struct {
	transport  network.Transport
	identities IdentityStore
	scheduler  Scheduler
	events     *Events
	limiter    *rate.Limiter
	timing     Timing
	role       string
	logger     *log.Logger

	tasks chan func()
	done  chan struct{}
	view  atomic.Pointer[View]
	ctx   context.Context

	generation     uint64
	connected      bool
	phase          gametypes.Phase
	previousPhase  gametypes.Phase
	reconnecting   bool
	reconnectEpoch uint64
	playerID       string
	state          *gametypes.GameState
	round          int
	identity       identity.Identity
	joinsSent      int
}

type NewSessionOptions struct {
	Transport  network.Transport
	Identities IdentityStore
	// Scheduler defaults to real timers posted back onto the loop.
	Scheduler Scheduler
	Events    *Events
	// Limiter throttles move and bomb commands.
	Limiter *rate.Limiter
	// Timing defaults to DefaultTiming.
	Timing *Timing
	// Role overrides the role of the loaded identity when set.
	Role string
}

func NewSession(opts NewSessionOptions) *Session {
	s := &Session{
		transport:  opts.Transport,
		identities: opts.Identities,
		scheduler:  opts.Scheduler,
		events:     opts.Events,
		limiter:    opts.Limiter,
		timing:     DefaultTiming,
		role:       opts.Role,
		logger:     log.With("component", "session"),
		tasks:      make(chan func(), 64),
		ctx:        context.Background(),
		done:       make(chan struct{}),
		phase:      gametypes.PhaseConnecting,
		state:      gametypes.NewGameState(gametypes.PhaseConnecting),
	}
	if opts.Timing != nil {
		s.timing = *opts.Timing
	}
	if s.scheduler == nil {
		s.scheduler = &loopScheduler{post: s.post}
	}
	if s.events == nil {
		s.events = NewEvents(EventQueueSize)
	}
	if s.limiter == nil {
		s.limiter = rate.NewLimiter(20, 5)
	}
	s.publishView()
	return s
}

func (s *Session) Events() *Events {
	return s.events
}

// View returns the most recently published view. It is safe to call from
// any goroutine.
func (s *Session) View() *View {
	return s.view.Load()
}

// Run connects and processes frames and posted tasks until ctx is done.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.done)

	s.ctx = ctx
	s.connect(ctx)
	s.publishView()

	frames := s.transport.Frames()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Session stopped")
			s.transport.Disconnect()
			return nil
		case frame, ok := <-frames:
			if !ok {
				return fmt.Errorf("transport frames channel closed")
			}
			s.handleFrame(frame)
		case task := <-s.tasks:
			task()
		}
		s.publishView()
	}
}

// post hands task to the loop. Tasks posted after Run returns are dropped.
func (s *Session) post(task func()) {
	select {
	case s.tasks <- task:
	case <-s.done:
	}
}

// call runs task on the loop and waits for it to finish.
func (s *Session) call(ctx context.Context, task func()) error {
	finished := make(chan struct{})
	wrapped := func() {
		defer close(finished)
		task()
	}
	select {
	case s.tasks <- wrapped:
	case <-s.done:
		return fmt.Errorf("session is not running")
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-finished:
		return nil
	case <-s.done:
		return fmt.Errorf("session is not running")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// connect loads the identity, opens a new transport generation and starts
// the join handshake for it.
func (s *Session) connect(ctx context.Context) {
	if err := s.loadIdentity(ctx); err != nil {
		s.logger.Error("Failed to load identity: %v", err)
	}
	s.generation = s.transport.Connect()
	s.connected = false
	s.joinsSent = 0
	s.logger.Info("Connecting (generation %d)", s.generation)
	s.startJoin(s.generation)
}

func (s *Session) loadIdentity(ctx context.Context) error {
	if s.identities == nil {
		return nil
	}
	id, err := s.identities.Load(ctx)
	if err != nil {
		return err
	}
	if s.role != "" {
		id.Role = s.role
	}
	s.identity = id.Normalized()
	return nil
}

func (s *Session) handleFrame(frame network.Frame) {
	if s.generation == 0 || frame.Generation != s.generation {
		s.logger.Trace("Ignoring frame from generation %d (current %d)", frame.Generation, s.generation)
		return
	}

	if frame.Err != nil {
		// No automatic reconnect; recovery only happens through RequestReconnect.
		s.logger.Error("Transport fault on generation %d: %v", frame.Generation, frame.Err)
		s.connected = false
		return
	}
	s.connected = true

	envelopes, err := messages.DecodeFrame(frame.Data)
	if err != nil {
		s.logger.Warn("Dropping frame: %v", err)
		return
	}

	for _, envelope := range envelopes {
		switch e := envelope.(type) {
		case messages.AssignID:
			s.assignID(e.PlayerID)
		case messages.GameStateUpdate:
			s.applySnapshot(e.State)
		case messages.ExplosionEvent:
			publish(s.events.Explosions, "explosion", e.Explosion)
		case messages.Unrecognized:
			s.logger.Debug("Ignoring message of type %s", e.Type)
		}
	}
}

func (s *Session) assignID(playerID string) {
	s.playerID = playerID
	if s.reconnecting {
		s.logger.Info("Assigned player id %s while reconnecting, waiting for lobby", playerID)
		return
	}
	s.logger.Info("Assigned player id %s", playerID)
}

func (s *Session) setPhase(phase gametypes.Phase) {
	if phase == s.phase {
		return
	}
	from := s.phase
	s.phase = phase
	s.logger.Debug("Phase changed from %s to %s", from, phase)
	publish(s.events.PhaseChanges, "phase", PhaseChanged{From: from, To: phase, Reconnecting: s.reconnecting})
}

func (s *Session) setReconnecting(reconnecting bool) {
	if reconnecting == s.reconnecting {
		return
	}
	s.reconnecting = reconnecting
	publish(s.events.PhaseChanges, "phase", PhaseChanged{From: s.phase, To: s.phase, Reconnecting: reconnecting})
}

func (s *Session) publishView() {
	state := s.state.Copy()
	id := s.identity
	if id.Color != nil {
		c := *id.Color
		id.Color = &c
	}
	s.view.Store(&View{
		Phase:        s.phase,
		Reconnecting: s.reconnecting,
		Connected:    s.connected,
		Generation:   s.generation,
		PlayerID:     s.playerID,
		Round:        s.round,
		JoinsSent:    s.joinsSent,
		Identity:     id,
		State:        state,
		Grid:         state.Grid(),
	})
}
