package session

import (
	gametypes "github.com/cbodonnell/bomberman/pkg/game/types"
	"github.com/cbodonnell/bomberman/pkg/log"
	"github.com/cbodonnell/bomberman/pkg/queue"
)

// EventQueueSize represents the capacity of each event queue
const EventQueueSize = 256

// SnapshotUpdated is emitted after every stored snapshot.
type SnapshotUpdated struct {
	State *gametypes.GameState
	Round int
}

// MapReset is emitted once per new round, after its first snapshot is stored.
type MapReset struct {
	Round int
}

// PhaseChanged is emitted when the phase or the reconnecting flag changes.
type PhaseChanged struct {
	From         gametypes.Phase
	To           gametypes.Phase
	Reconnecting bool
}

// Events holds one queue per event kind. Each queue has a single consumer.
type Events struct {
	Snapshots    queue.Queue[SnapshotUpdated]
	Explosions   queue.Queue[gametypes.Explosion]
	MapResets    queue.Queue[MapReset]
	PhaseChanges queue.Queue[PhaseChanged]
}

func NewEvents(size int) *Events {
	return &Events{
		Snapshots:    queue.NewInMemoryQueue[SnapshotUpdated](size),
		Explosions:   queue.NewInMemoryQueue[gametypes.Explosion](size),
		MapResets:    queue.NewInMemoryQueue[MapReset](size),
		PhaseChanges: queue.NewInMemoryQueue[PhaseChanged](size),
	}
}

// publish never blocks the loop; a full queue drops the event.
func publish[T any](q queue.Queue[T], kind string, event T) {
	if err := q.Enqueue(event); err != nil {
		log.Warn("Dropping %s event: %v", kind, err)
	}
}
