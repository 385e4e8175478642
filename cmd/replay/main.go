package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/bomberman/client/session"
	"github.com/cbodonnell/bomberman/pkg/identity"
	"github.com/cbodonnell/bomberman/pkg/log"
	"github.com/cbodonnell/bomberman/pkg/replay"
	"github.com/cbodonnell/bomberman/pkg/repositories"
	"github.com/cbodonnell/bomberman/pkg/version"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	speed := flag.Float64("speed", 0, "Playback speed, 0 plays frames back to back")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <recording>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)

	log.Info("Starting replay version %s", version.Get())

	entries, err := replay.Load(flag.Arg(0))
	if err != nil {
		panic(fmt.Sprintf("Failed to load recording: %v", err))
	}

	transport := replay.NewTransport(replay.NewTransportOptions{Entries: entries, Speed: *speed})
	sess := session.NewSession(session.NewSessionOptions{
		Transport:  transport,
		Identities: identity.NewStore(repositories.NewMemoryRepository()),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	sessionErr := make(chan error, 1)
	go func() {
		sessionErr <- sess.Run(ctx)
	}()
	go func() {
		if err := transport.Drive(ctx, sess); err != nil {
			log.Debug("Replay stopped: %v", err)
		}
	}()

	events := sess.Events()
	explosions := 0
	for done := false; !done; {
		select {
		case <-ctx.Done():
			log.Warn("Replay interrupted")
			done = true
		case <-transport.Done():
			// let the loop drain what playback already queued
			for len(transport.Frames()) > 0 {
				time.Sleep(10 * time.Millisecond)
			}
			time.Sleep(50 * time.Millisecond)
			done = true
		case change := <-events.PhaseChanges.Chan():
			log.Info("Phase %s -> %s", change.From, change.To)
		case reset := <-events.MapResets.Chan():
			log.Info("Round %d started", reset.Round)
		case <-events.Explosions.Chan():
			explosions++
		case <-events.Snapshots.Chan():
		}
	}

	view := sess.View()
	log.Info("Replay finished: phase %s, player %s, %d rounds, %d explosions", view.Phase, view.PlayerID, view.Round, explosions)

	cancel()
	if err := <-sessionErr; err != nil {
		log.Error("Session stopped with error: %v", err)
	}
}
