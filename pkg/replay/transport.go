package replay

import (
	"context"
	"sync"
	"time"

	"github.com/cbodonnell/bomberman/client/network"
	"github.com/cbodonnell/bomberman/pkg/log"
)

const (
	DefaultReconnectTimeout = 5 * time.Second
	reconnectRetryInterval  = 50 * time.Millisecond
)

// Transport plays a recording back as if it were a live connection. Each
// Connect plays the next recorded connection; sends are discarded.
type Transport struct {
	segments         []Segment
	speed            float64
	reconnectTimeout time.Duration
	frames           chan network.Frame
	done             chan struct{}
	// ended carries the generation of a finished connection that is not the last
	ended chan uint64

	mu         sync.Mutex
	generation uint64
	next       int
	cancel     context.CancelFunc
	finished   bool
}

type NewTransportOptions struct {
	Entries []Entry
	// Speed scales recorded delays. Zero plays frames back to back.
	Speed float64
	// ReconnectTimeout bounds how long Drive retries a reconnect between
	// recorded connections. Zero uses DefaultReconnectTimeout.
	ReconnectTimeout time.Duration
}

func NewTransport(opts NewTransportOptions) *Transport {
	t := &Transport{
		segments:         Segments(opts.Entries),
		speed:            opts.Speed,
		reconnectTimeout: opts.ReconnectTimeout,
		frames:           make(chan network.Frame, 64),
		done:             make(chan struct{}),
		ended:            make(chan uint64, 1),
	}
	if t.reconnectTimeout <= 0 {
		t.reconnectTimeout = DefaultReconnectTimeout
	}
	return t
}

var _ network.Transport = (*Transport)(nil)

func (t *Transport) Connect() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
	t.generation++
	generation := t.generation

	if t.next >= len(t.segments) {
		log.Info("Recording exhausted, nothing to play for generation %d", generation)
		t.finishLocked()
		return generation
	}
	segment := t.segments[t.next]
	t.next++
	last := t.next == len(t.segments)

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	go t.play(ctx, generation, segment, last)
	return generation
}

func (t *Transport) Disconnect() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

func (t *Transport) Send(b []byte) error {
	log.Trace("Replay discarding outbound message: %s", b)
	return nil
}

func (t *Transport) Frames() <-chan network.Frame {
	return t.frames
}

// Done is closed once the last recorded connection has been played.
func (t *Transport) Done() <-chan struct{} {
	return t.done
}

func (t *Transport) finishLocked() {
	if !t.finished {
		t.finished = true
		close(t.done)
	}
}

func (t *Transport) play(ctx context.Context, generation uint64, segment Segment, last bool) {
	log.Info("Replaying connection %s (%d frames)", segment.Connection, len(segment.Frames))
	var elapsed time.Duration
	for _, entry := range segment.Frames {
		if t.speed > 0 {
			at := time.Duration(float64(entry.AtMS) * float64(time.Millisecond) / t.speed)
			if wait := at - elapsed; wait > 0 {
				select {
				case <-time.After(wait):
				case <-ctx.Done():
					return
				}
			}
			elapsed = at
		}

		frame := network.Frame{Generation: generation, ConnectionID: segment.Connection, Data: []byte(entry.Data)}
		select {
		case t.frames <- frame:
		case <-ctx.Done():
			return
		}
	}

	if last {
		t.mu.Lock()
		t.finishLocked()
		t.mu.Unlock()
		return
	}
	select {
	case t.ended <- generation:
	default:
	}
}

// Reconnector is the part of a session that moves playback from one recorded
// connection to the next.
type Reconnector interface {
	RequestReconnect(ctx context.Context) error
}

// Drive asks r to reconnect whenever a recorded connection other than the
// last one has been played, so a session reaches every connection in the
// recording. It returns when playback is done or ctx ends.
func (t *Transport) Drive(ctx context.Context, r Reconnector) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.done:
			return nil
		case generation := <-t.ended:
			t.reconnect(ctx, r, generation)
		}
	}
}

// reconnect retries until the session accepts the request, another Connect
// moves playback on, or the timeout passes. A session that never returns to
// the lobby ends playback.
func (t *Transport) reconnect(ctx context.Context, r Reconnector, generation uint64) {
	deadline := time.Now().Add(t.reconnectTimeout)
	for {
		if t.Generation() != generation {
			return
		}
		err := r.RequestReconnect(ctx)
		if err == nil {
			log.Info("Requested reconnect after replaying generation %d", generation)
			return
		}
		if ctx.Err() != nil {
			return
		}
		if time.Now().After(deadline) {
			log.Warn("Stopping replay, session did not reconnect after generation %d: %v", generation, err)
			t.mu.Lock()
			t.finishLocked()
			t.mu.Unlock()
			return
		}
		log.Debug("Reconnect not accepted yet: %v", err)
		select {
		case <-time.After(reconnectRetryInterval):
		case <-ctx.Done():
			return
		}
	}
}

// Generation returns the generation of the latest Connect.
func (t *Transport) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.generation
}
