package game

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/cbodonnell/bomberman/client/flow"
	"github.com/cbodonnell/bomberman/client/fonts"
	"github.com/cbodonnell/bomberman/client/input"
	"github.com/cbodonnell/bomberman/client/session"
	gametypes "github.com/cbodonnell/bomberman/pkg/game/types"
	"github.com/cbodonnell/bomberman/pkg/identity"
	"github.com/cbodonnell/bomberman/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// Session is the part of the session the game drives.
type Session interface {
	View() *session.View
	Events() *session.Events
	Move(ctx context.Context, dx, dy int) error
	PlaceBomb(ctx context.Context) error
	Ready(ctx context.Context) error
	UpdateIdentity(ctx context.Context, next identity.Identity) (bool, error)
}

// commandTimeout bounds how long a frame waits on the session loop.
const commandTimeout = 50 * time.Millisecond

// explosionTicks is how long an explosion stays on screen.
const explosionTicks = 30

type explosion struct {
	cells []gametypes.Coordinate
	ticks int
}

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// session owns the connection and the latest snapshot.
	session Session
	// mode is the current game mode.
	mode flow.GameMode
	// board lays out the current map.
	board *Board
	// explosions are the explosions still being drawn.
	explosions []*explosion
}

type NewGameOptions struct {
	Debug   bool
	Session Session
}

func NewGame(opts NewGameOptions) *Game {
	return &Game{
		debug:   opts.Debug,
		session: opts.Session,
		mode:    flow.GameModeConnecting,
		board:   NewBoard(DefaultScreenWidth, DefaultScreenHeight-hudHeight),
	}
}

func (g *Game) Update() error {
	g.drainEvents()

	view := g.session.View()
	mode := flow.ModeFor(view.Phase, view.Reconnecting)
	if mode != g.mode {
		log.Debug("Game mode changed from %s to %s", g.mode, mode)
		g.mode = mode
	}

	if err := g.handleInput(view); err != nil {
		return err
	}

	for i := 0; i < len(g.explosions); {
		g.explosions[i].ticks--
		if g.explosions[i].ticks <= 0 {
			g.explosions = append(g.explosions[:i], g.explosions[i+1:]...)
			continue
		}
		i++
	}

	return nil
}

func (g *Game) drainEvents() {
	events := g.session.Events()
	for _, reset := range events.MapResets.ReadAllMessages() {
		log.Debug("Rebuilding board for round %d", reset.Round)
		g.board.Reset()
		g.explosions = nil
	}
	for _, e := range events.Explosions.ReadAllMessages() {
		g.explosions = append(g.explosions, &explosion{cells: e.Cells, ticks: explosionTicks})
	}
	for _, change := range events.PhaseChanges.ReadAllMessages() {
		log.Debug("Phase %s -> %s (reconnecting: %t)", change.From, change.To, change.Reconnecting)
	}
	// the view already carries the latest snapshot
	events.Snapshots.ClearQueue()
}

func (g *Game) handleInput(view *session.View) error {
	if input.IsNegativeJustPressed() {
		return ebiten.Termination
	}
	if input.IsDebugJustPressed() {
		g.debug = !g.debug
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	switch g.mode {
	case flow.GameModeLobby:
		if input.IsPositiveJustPressed() {
			g.logCommandError("ready", g.session.Ready(ctx))
		}
		if input.IsCycleColorJustPressed() {
			g.cycleColor(view)
		}
	case flow.GameModePlay:
		if dx, dy := input.Direction(); dx != 0 || dy != 0 {
			g.logCommandError("move", g.session.Move(ctx, dx, dy))
		}
		if input.IsBombJustPressed() {
			g.logCommandError("place_bomb", g.session.PlaceBomb(ctx))
		}
	}
	return nil
}

func (g *Game) cycleColor(view *session.View) {
	current := identity.DefaultColor
	if view.Identity.Color != nil {
		current = *view.Identity.Color
	}
	next := identity.NextPaletteColor(current)
	// saving touches preference storage, keep it off the frame
	go func() {
		reconnecting, err := g.session.UpdateIdentity(context.Background(), identity.Identity{Color: &next})
		if err != nil {
			log.Error("Failed to update color: %v", err)
			return
		}
		log.Info("Color changed (reconnecting: %t)", reconnecting)
	}()
}

func (g *Game) logCommandError(name string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, session.ErrRateLimited), errors.Is(err, session.ErrCommandNotAllowed):
		log.Trace("Dropped %s: %v", name, err)
	default:
		log.Warn("Failed to send %s: %v", name, err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	view := g.session.View()
	screen.Fill(color.RGBA{24, 24, 32, 255})

	g.board.Layout(view.Grid)
	board := screen.SubImage(g.board.Bounds(hudHeight)).(*ebiten.Image)
	g.board.DrawTiles(board, view.Grid)
	g.board.DrawBombs(board, view.State.Bombs)
	for _, e := range g.explosions {
		g.board.DrawExplosion(board, e.cells, float32(e.ticks)/explosionTicks)
	}
	g.board.DrawPlayers(board, view.State.Players, view.PlayerID)

	g.drawHUD(screen, view)
	if g.debug {
		g.drawDebugOverlay(screen, view)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, view *session.View) {
	text.Draw(screen, flow.Banner(view), fonts.SmallFont, 8, 20, color.White)
	if view.ShouldShowSpectatorBadge() {
		text.Draw(screen, "SPECTATING", fonts.SmallFont, DefaultScreenWidth-90, 20, color.RGBA{255, 200, 0, 255})
	}
	if view.Identity.Name != "" {
		text.Draw(screen, view.Identity.Name, fonts.SmallFont, 8, 36, color.RGBA{180, 180, 180, 255})
	}

	switch g.mode {
	case flow.GameModeReconnecting, flow.GameModeConnecting:
		g.drawCentered(screen, g.mode.String()+"...")
	case flow.GameModeOver:
		g.drawCentered(screen, "GAME OVER")
	}
}

func (g *Game) drawCentered(screen *ebiten.Image, t string) {
	bounds := text.BoundString(fonts.MPlusNormalFont, t)
	x := (DefaultScreenWidth - bounds.Dx()) / 2
	y := (DefaultScreenHeight + hudHeight) / 2
	text.Draw(screen, t, fonts.MPlusNormalFont, x, y, color.White)
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image, view *session.View) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f TPS: %0.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 8, DefaultScreenHeight-48)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Generation: %d Connected: %t Joins: %d", view.Generation, view.Connected, view.JoinsSent), 8, DefaultScreenHeight-32)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Player: %s Round: %d Phase: %s", view.PlayerID, view.Round, view.Phase), 8, DefaultScreenHeight-16)
}

const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480

	hudHeight = 44
)

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return DefaultScreenWidth, DefaultScreenHeight
}
