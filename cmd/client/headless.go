package main

import (
	"context"

	"github.com/cbodonnell/bomberman/client/session"
	"github.com/cbodonnell/bomberman/pkg/log"
)

// runHeadless logs session events until ctx is done.
func runHeadless(ctx context.Context, events *session.Events) {
	log.Info("Running headless, press Ctrl+C to exit")
	for {
		select {
		case <-ctx.Done():
			return
		case change := <-events.PhaseChanges.Chan():
			log.Info("Phase %s -> %s (reconnecting: %t)", change.From, change.To, change.Reconnecting)
		case reset := <-events.MapResets.Chan():
			log.Info("Round %d started", reset.Round)
		case explosion := <-events.Explosions.Chan():
			log.Debug("Explosion covering %d cells", len(explosion.Cells))
		case snapshot := <-events.Snapshots.Chan():
			log.Trace("Snapshot: %d players, %d bombs", len(snapshot.State.Players), len(snapshot.State.Bombs))
		}
	}
}
