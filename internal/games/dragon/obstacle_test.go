package dragon

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

func TestBodyPieces(t *testing.T) {
	tests := []struct {
		name                     string
		worldH, creatureH, piece int
		expected                 int
	}{
		{"default terminal", 24, 2, 1, 15},
		{"pixel playfield", 512, 32, 32, 10},
		{"too small", 5, 2, 1, 1},
		{"zero piece", 24, 2, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BodyPieces(tc.worldH, tc.creatureH, tc.piece); got != tc.expected {
				t.Errorf("BodyPieces() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestObstaclePairInvariants(t *testing.T) {
	for _, cfg := range []config.DragonConfig{config.DefaultDragonConfig(), pixelConfig()} {
		art := obstacleArt(solidArt(cfg))
		clock := core.NewClock(cfg.Timing.FPS)
		total := BodyPieces(cfg.World.Height, cfg.Creature.Height, cfg.Obstacles.PieceHeight)

		for seed := int64(0); seed < 50; seed++ {
			p := NewObstaclePair(cfg, clock, art, rand.New(rand.NewSource(seed)))

			if p.topPieces+p.bottomPieces != total+2 {
				t.Fatalf("seed %d: pieces %d+%d, expected %d", seed, p.topPieces, p.bottomPieces, total+2)
			}
			if p.topPieces < 1 || p.bottomPieces < 2 {
				t.Fatalf("seed %d: top=%d bottom=%d", seed, p.topPieces, p.bottomPieces)
			}
			if p.GapHeight() < 3*cfg.Creature.Height {
				t.Fatalf("seed %d: gap %d narrower than %d", seed, p.GapHeight(), 3*cfg.Creature.Height)
			}
			if p.X() != float64(cfg.World.Width-1) {
				t.Fatalf("seed %d: spawned at x=%v", seed, p.X())
			}
			if p.ScoreCounted() {
				t.Fatalf("seed %d: new pair already counted", seed)
			}
		}
	}
}

func TestObstaclePairMask(t *testing.T) {
	cfg := config.DefaultDragonConfig()
	art := obstacleArt(solidArt(cfg))
	p := NewObstaclePair(cfg, core.NewClock(60), art, rand.New(rand.NewSource(7)))

	m := p.Mask(0)
	if m.Width() != cfg.Obstacles.Width || m.Height() != cfg.World.Height {
		t.Fatalf("mask size = %dx%d", m.Width(), m.Height())
	}

	gapTop := p.TopHeight()
	gapBottom := cfg.World.Height - p.BottomHeight()
	for y := 0; y < cfg.World.Height; y++ {
		inGap := y >= gapTop && y < gapBottom
		for x := 0; x < m.Width(); x++ {
			if m.Get(x, y) == inGap {
				t.Fatalf("mask(%d, %d) = %v, gap spans [%d, %d)", x, y, m.Get(x, y), gapTop, gapBottom)
			}
		}
	}
}

func TestObstaclePairEndCapsFaceGap(t *testing.T) {
	cfg := config.DefaultDragonConfig()
	end := solidImage(cfg.Obstacles.Width, cfg.Obstacles.PieceHeight)
	body := core.NewImage(cfg.Obstacles.Width, cfg.Obstacles.PieceHeight)
	body.Set(0, 0, core.Cell{Rune: '|'})

	p := NewObstaclePair(cfg, core.NewClock(60), ObstacleArt{End: end, Body: body}, rand.New(rand.NewSource(3)))
	img := p.Image(0)

	// Rows touching the gap are full-width caps
	capRows := []int{p.TopHeight() - 1, cfg.World.Height - p.BottomHeight()}
	for _, y := range capRows {
		if img.At(cfg.Obstacles.Width-1, y).Transparent() {
			t.Errorf("row %d should be an end cap", y)
		}
	}

	// Rows away from the gap are body
	if !img.At(cfg.Obstacles.Width-1, cfg.World.Height-1).Transparent() {
		t.Error("bottom row should be body, not an end cap")
	}
}

func TestObstaclePairScrollAndVisibility(t *testing.T) {
	cfg := config.DefaultDragonConfig()
	clock := core.NewClock(cfg.Timing.FPS)
	p := NewObstaclePair(cfg, clock, obstacleArt(solidArt(cfg)), rand.New(rand.NewSource(1)))

	if !p.Visible() {
		t.Fatal("new pair should be visible")
	}

	start := p.X()
	p.Update(1)
	expected := start - cfg.Obstacles.ScrollSpeed*clock.FramesToMillis(1)
	if p.X() != expected {
		t.Errorf("X() after one frame = %v, expected %v", p.X(), expected)
	}

	p.x = -float64(cfg.Obstacles.Width) + 0.5
	if !p.Visible() {
		t.Error("pair with a sliver on screen should be visible")
	}
	p.x = -float64(cfg.Obstacles.Width)
	if p.Visible() {
		t.Error("pair fully past the left edge should not be visible")
	}
	p.x = float64(cfg.World.Width)
	if p.Visible() {
		t.Error("pair past the right edge should not be visible")
	}
}

func TestObstaclePairCollision(t *testing.T) {
	cfg := config.DefaultDragonConfig()
	art := solidArt(cfg)
	clock := core.NewClock(cfg.Timing.FPS)
	p := NewObstaclePair(cfg, clock, obstacleArt(art), rand.New(rand.NewSource(5)))
	c := NewCreature(cfg.Creature, cfg.World.Height, clock, art.CreatureUp, art.CreatureDown)

	p.x = c.X()

	// Inside the gap
	c.y = float64(p.TopHeight())
	if p.CollidesWith(c, 0) {
		t.Error("creature in the gap should not collide")
	}

	// One row into the top half
	c.y = float64(p.TopHeight() - 1)
	if !p.CollidesWith(c, 0) {
		t.Error("creature overlapping the top half should collide")
	}

	// Clear of the pair horizontally
	p.x = c.X() + float64(cfg.Creature.Width)
	if p.CollidesWith(c, 0) {
		t.Error("creature left of the pair should not collide")
	}
}
