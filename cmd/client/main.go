package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/bomberman/client/game"
	"github.com/cbodonnell/bomberman/client/network"
	"github.com/cbodonnell/bomberman/client/session"
	"github.com/cbodonnell/bomberman/pkg/api"
	"github.com/cbodonnell/bomberman/pkg/config"
	"github.com/cbodonnell/bomberman/pkg/identity"
	"github.com/cbodonnell/bomberman/pkg/log"
	"github.com/cbodonnell/bomberman/pkg/messages"
	"github.com/cbodonnell/bomberman/pkg/replay"
	"github.com/cbodonnell/bomberman/pkg/repositories"
	"github.com/cbodonnell/bomberman/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(2)
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, cfg.LogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", cfg.LogLevel)

	log.Info("Starting client version %s", version.Get())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	repository, err := repositories.NewRepository(ctx, cfg.PreferencesURL)
	if err != nil {
		panic(fmt.Sprintf("Failed to open preferences: %v", err))
	}
	defer repository.Close(context.Background())

	var recorder network.FrameRecorder
	if cfg.RecordPath != "" {
		r, err := replay.CreateRecorder(cfg.RecordPath)
		if err != nil {
			panic(fmt.Sprintf("Failed to create recording: %v", err))
		}
		defer func() {
			if err := r.Close(); err != nil {
				log.Error("Failed to close recording: %v", err)
				return
			}
			log.Info("Recorded %d frames to %s", r.Frames(), cfg.RecordPath)
		}()
		recorder = r
	}

	transport := network.NewWSClient(network.NewWSClientOptions{
		ServerURL: cfg.ServerURL,
		Recorder:  recorder,
	})

	role := ""
	if cfg.Spectator {
		role = messages.RoleSpectator
	}
	sess := session.NewSession(session.NewSessionOptions{
		Transport:  transport,
		Identities: identity.NewStore(repository),
		Role:       role,
	})

	if cfg.DebugAddr != "" {
		apiServer := api.NewAPIServer(api.NewAPIServerOptions{
			Addr:    cfg.DebugAddr,
			Session: sess,
		})
		go apiServer.Start()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := apiServer.Stop(shutdownCtx); err != nil {
				log.Error("Failed to stop debug server: %v", err)
			}
		}()
	}

	sessionErr := make(chan error, 1)
	go func() {
		sessionErr <- sess.Run(ctx)
	}()

	if cfg.Headless {
		runHeadless(ctx, sess.Events())
	} else {
		ebiten.SetWindowSize(game.DefaultScreenWidth, game.DefaultScreenHeight)
		ebiten.SetWindowTitle("Bomberman")
		if err := ebiten.RunGame(game.NewGame(game.NewGameOptions{Debug: cfg.Debug, Session: sess})); err != nil {
			log.Error("Game exited with error: %v", err)
		}
	}

	cancel()
	if err := <-sessionErr; err != nil {
		log.Error("Session stopped with error: %v", err)
	}
	log.Info("Client stopped")
}
