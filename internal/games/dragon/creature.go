package dragon

import (
	"math"
	"time"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Creature is the player-controlled dragon. It never moves horizontally;
// the world scrolls past it.
type Creature struct {
	x         float64
	y         float64
	msToClimb float64 // Remaining climb time; descends when <= 0

	cfg   config.Creature
	clock core.Clock

	wingsUp       *core.Image
	wingsDown     *core.Image
	wingsUpMask   *core.Mask
	wingsDownMask *core.Mask
}

// NewCreature places the creature at its configured x, vertically centered
// in a world of the given height.
func NewCreature(cfg config.Creature, worldH int, clock core.Clock, wingsUp, wingsDown *core.Image) *Creature {
	return &Creature{
		x:             float64(cfg.X),
		y:             float64(worldH/2 - cfg.Height/2),
		msToClimb:     cfg.InitialClimb,
		cfg:           cfg,
		clock:         clock,
		wingsUp:       wingsUp,
		wingsDown:     wingsDown,
		wingsUpMask:   core.MaskFromImage(wingsUp),
		wingsDownMask: core.MaskFromImage(wingsDown),
	}
}

// X returns the fixed horizontal position.
func (c *Creature) X() float64 {
	return c.x
}

// Y returns the vertical position of the top edge.
func (c *Creature) Y() float64 {
	return c.y
}

// Climbing reports whether a flap is still lifting the creature.
func (c *Creature) Climbing() bool {
	return c.msToClimb > 0
}

// Update advances the vertical motion.
//
// While climbing, the lift follows 1 - cos(π·progress): it starts at zero,
// peaks at the end of the climb, and the timer then hands over to a
// constant-speed descent. There is no acceleration while falling.
func (c *Creature) Update(elapsedFrames float64) {
	ms := c.clock.FramesToMillis(elapsedFrames)
	if c.msToClimb > 0 {
		progress := 1 - c.msToClimb/c.cfg.ClimbDuration
		c.y -= c.cfg.UpSpeed * ms * (1 - math.Cos(progress*math.Pi))
		c.msToClimb -= ms
		return
	}
	c.y += c.cfg.DownSpeed * ms
}

// Flap re-arms a full climb, whatever the creature is doing.
func (c *Creature) Flap() {
	c.msToClimb = c.cfg.ClimbDuration
}

// Rect returns the bounding rectangle at the current position.
func (c *Creature) Rect() core.Rect {
	return core.RectAt(c.x, c.y, c.cfg.Width, c.cfg.Height)
}

// WingsUp reports the animation phase at wall-clock offset at. The second
// half of each flap period shows the wings raised.
func (c *Creature) WingsUp(at time.Duration) bool {
	period := c.cfg.FlapPeriod
	if period <= 0 {
		return false
	}
	return int(at.Milliseconds())%period >= period/2
}

// Image returns the animation frame for at.
func (c *Creature) Image(at time.Duration) *core.Image {
	if c.WingsUp(at) {
		return c.wingsUp
	}
	return c.wingsDown
}

// Mask returns the collision mask of the frame shown at at.
func (c *Creature) Mask(at time.Duration) *core.Mask {
	if c.WingsUp(at) {
		return c.wingsUpMask
	}
	return c.wingsDownMask
}

// OutOfBounds reports whether the creature has touched the top edge or
// dropped to the bottom of a world of the given height.
func (c *Creature) OutOfBounds(worldH int) bool {
	return c.y <= 0 || c.y >= float64(worldH-c.cfg.Height)
}

var _ core.Sprite = (*Creature)(nil)
