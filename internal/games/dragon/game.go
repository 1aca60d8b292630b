// Package dragon implements Flappy Dragon, a side-scroller in which the
// player keeps a dragon airborne through gaps in a stream of obstacles.
package dragon

import (
	"strconv"
	"time"

	"github.com/vovakirdan/flappy-dragon/internal/assets"
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Game implements the Flappy Dragon game loop body: one Step per tick.
type Game struct {
	cfg      config.DragonConfig
	art      assets.Set
	clock    core.Clock
	creature *Creature
	stream   *ObstacleStream
	score    int
	frame    int // Only advances while running
	status   core.Status
	reason   core.Reason
}

// New creates a game from a configuration and its loaded sprites.
// Call Reset before the first Step.
func New(cfg config.DragonConfig, art assets.Set) *Game {
	return &Game{
		cfg: cfg,
		art: art,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dragon"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Dragon"
}

// Size returns the world size in cells.
func (g *Game) Size() (int, int) {
	return g.cfg.World.Width, g.cfg.World.Height
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	fps := rt.TickRate
	if fps <= 0 {
		fps = g.cfg.Timing.FPS
	}
	g.clock = core.NewClock(fps)

	g.creature = NewCreature(g.cfg.Creature, g.cfg.World.Height, g.clock, g.art.CreatureUp, g.art.CreatureDown)

	// Pairs scroll by the stream's clock, so a new tick rate needs a new stream
	if g.stream == nil || g.stream.clock != g.clock {
		art := ObstacleArt{End: g.art.ObstacleEnd, Body: g.art.ObstacleBody}
		g.stream = NewObstacleStream(rt.Seed, g.cfg, g.clock, art)
	} else {
		g.stream.Reset(rt.Seed)
	}

	g.score = 0
	g.frame = 0
	g.status = core.StatusRunning
	g.reason = core.ReasonNone
}

// Step advances the game by one tick.
//
// Order within a running tick: spawn check, input, collision and bounds,
// eviction, movement, scoring, frame counter. While paused only the input is
// processed. Once terminated the state never changes again.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.status == core.StatusTerminated {
		return core.StepResult{State: g.State()}
	}

	// Checked before input, so a resuming tick never spawns
	if g.status == core.StatusRunning && g.stream.SpawnDue(g.frame) {
		g.stream.Spawn()
	}

	for _, a := range in.Actions {
		switch a {
		case core.ActionQuit:
			g.terminate(core.ReasonQuit)
			return core.StepResult{State: g.State()}
		case core.ActionPause:
			g.togglePause()
		case core.ActionFlap:
			g.creature.Flap()
		}
	}

	if g.status == core.StatusPaused {
		return core.StepResult{State: g.State()}
	}

	if g.stream.Collides(g.creature, in.Time) {
		g.terminate(core.ReasonCollision)
		return core.StepResult{State: g.State()}
	}
	if g.creature.OutOfBounds(g.cfg.World.Height) {
		g.terminate(core.ReasonBounds)
		return core.StepResult{State: g.State()}
	}

	g.stream.Evict()
	g.stream.Update(1)
	g.creature.Update(1)

	scored := g.stream.Score(g.creature.X())
	g.score += scored

	g.frame++

	return core.StepResult{State: g.State(), Scored: scored}
}

func (g *Game) togglePause() {
	if g.status == core.StatusPaused {
		g.status = core.StatusRunning
	} else {
		g.status = core.StatusPaused
	}
}

func (g *Game) terminate(reason core.Reason) {
	g.status = core.StatusTerminated
	g.reason = reason
}

// Render draws the current game state to the screen. at is the wall-clock
// offset used for the creature's wing animation.
func (g *Game) Render(dst *core.Screen, at time.Duration) {
	dst.Clear()

	if bg := g.art.Background; bg != nil && bg.Width() > 0 && bg.Height() > 0 {
		for y := 0; y < dst.Height(); y += bg.Height() {
			for x := 0; x < dst.Width(); x += bg.Width() {
				dst.Blit(bg, x, y)
			}
		}
	}

	for p := range g.stream.Pairs() {
		r := p.Rect()
		dst.Blit(p.Image(at), r.X, r.Y)
	}

	r := g.creature.Rect()
	dst.Blit(g.creature.Image(at), r.X, r.Y)

	dst.DrawTextCentered(g.cfg.Obstacles.PieceHeight, strconv.Itoa(g.score), core.ColorBrightWhite)

	if g.status == core.StatusPaused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := core.Clamp((w-boxW)/2, 0, w)
	boxY := core.Clamp((h-boxH)/2, 0, h)

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Frame:  g.frame,
		Status: g.status,
		Reason: g.reason,
	}
}
