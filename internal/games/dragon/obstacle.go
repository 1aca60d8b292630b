package dragon

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// ObstacleArt is the pair of sprites an obstacle is stacked from.
type ObstacleArt struct {
	End  *core.Image // Cap on the gap side of each half
	Body *core.Image // Repeated segment
}

// ObstaclePair is one scrolling obstacle: a top and a bottom half with a gap
// between them. The whole pair is composited into a single world-height
// image when created, so collision is one mask test.
type ObstaclePair struct {
	x            float64
	topPieces    int // Includes the end piece
	bottomPieces int // Includes the end piece
	scoreCounted bool

	cfg    config.Obstacles
	worldW int
	worldH int
	clock  core.Clock

	image *core.Image
	mask  *core.Mask
}

// BodyPieces returns how many body pieces fit in a world, leaving room for a
// gap of three creature heights plus the two end pieces and one spare piece.
// It is at least 1 so tiny worlds still produce an obstacle.
func BodyPieces(worldH, creatureH, pieceH int) int {
	if pieceH <= 0 {
		return 1
	}
	n := (worldH - 3*creatureH - 3*pieceH) / pieceH
	if n < 1 {
		n = 1
	}
	return n
}

// NewObstaclePair generates a pair at the right edge of the world with a
// random split of body pieces between top and bottom.
func NewObstaclePair(cfg config.DragonConfig, clock core.Clock, art ObstacleArt, rng *rand.Rand) *ObstaclePair {
	total := BodyPieces(cfg.World.Height, cfg.Creature.Height, cfg.Obstacles.PieceHeight)
	bottom := 1 + rng.Intn(total)

	p := &ObstaclePair{
		x:            float64(cfg.World.Width - 1),
		topPieces:    total - bottom,
		bottomPieces: bottom,
		cfg:          cfg.Obstacles,
		worldW:       cfg.World.Width,
		worldH:       cfg.World.Height,
		clock:        clock,
	}
	p.render(art)
	return p
}

// render composites the body pieces and end caps onto a transparent image,
// then counts each end cap as a piece of its half.
func (p *ObstaclePair) render(art ObstacleArt) {
	ph := p.cfg.PieceHeight
	img := core.NewImage(p.cfg.Width, p.worldH)

	// Bottom half grows up from the bottom edge
	for i := 1; i <= p.bottomPieces; i++ {
		img.Blit(art.Body, 0, p.worldH-i*ph)
	}
	img.Blit(art.End, 0, p.worldH-p.BottomHeight()-ph)

	// Top half grows down from the top edge
	for i := 0; i < p.topPieces; i++ {
		img.Blit(art.Body, 0, i*ph)
	}
	img.Blit(art.End, 0, p.TopHeight())

	p.topPieces++
	p.bottomPieces++

	p.image = img
	p.mask = core.MaskFromImage(img)
}

// X returns the horizontal position of the left edge.
func (p *ObstaclePair) X() float64 {
	return p.x
}

// Width returns the obstacle width in cells.
func (p *ObstaclePair) Width() int {
	return p.cfg.Width
}

// TopHeight returns the height of the top half in cells.
func (p *ObstaclePair) TopHeight() int {
	return p.topPieces * p.cfg.PieceHeight
}

// BottomHeight returns the height of the bottom half in cells.
func (p *ObstaclePair) BottomHeight() int {
	return p.bottomPieces * p.cfg.PieceHeight
}

// GapHeight returns the height of the opening between the halves.
func (p *ObstaclePair) GapHeight() int {
	return p.worldH - p.TopHeight() - p.BottomHeight()
}

// ScoreCounted reports whether this pair has already awarded its point.
func (p *ObstaclePair) ScoreCounted() bool {
	return p.scoreCounted
}

// Visible reports whether any part of the pair is inside the world.
func (p *ObstaclePair) Visible() bool {
	return -float64(p.cfg.Width) < p.x && p.x < float64(p.worldW)
}

// Update scrolls the pair left.
func (p *ObstaclePair) Update(elapsedFrames float64) {
	p.x -= p.cfg.ScrollSpeed * p.clock.FramesToMillis(elapsedFrames)
}

// Rect returns the bounding rectangle; the pair spans the full world height.
func (p *ObstaclePair) Rect() core.Rect {
	return core.RectAt(p.x, 0, p.cfg.Width, p.worldH)
}

// Image returns the composited obstacle. It does not animate.
func (p *ObstaclePair) Image(time.Duration) *core.Image {
	return p.image
}

// Mask returns the precomputed collision mask.
func (p *ObstaclePair) Mask(time.Duration) *core.Mask {
	return p.mask
}

// CollidesWith tests the pair against the creature's current frame.
func (p *ObstaclePair) CollidesWith(c *Creature, at time.Duration) bool {
	return core.Collide(p, c, at)
}

var _ core.Sprite = (*ObstaclePair)(nil)
