package dragon

import (
	"iter"
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// ObstacleStream owns the live obstacle pairs, oldest first.
// All pairs scroll at the same speed and are appended in creation order, so
// the queue stays sorted by x and only ever needs to shed from the front.
type ObstacleStream struct {
	pairs core.Deque[*ObstaclePair]
	rng   *rand.Rand
	cfg   config.DragonConfig
	clock core.Clock
	art   ObstacleArt
}

// NewObstacleStream creates an empty stream with the given RNG seed.
func NewObstacleStream(seed int64, cfg config.DragonConfig, clock core.Clock, art ObstacleArt) *ObstacleStream {
	return &ObstacleStream{
		rng:   rand.New(rand.NewSource(seed)),
		cfg:   cfg,
		clock: clock,
		art:   art,
	}
}

// Reset clears all pairs and reseeds the RNG.
func (s *ObstacleStream) Reset(seed int64) {
	s.pairs.Clear()
	s.rng = rand.New(rand.NewSource(seed))
}

// SpawnDue reports whether a new pair is due on frame.
func (s *ObstacleStream) SpawnDue(frame int) bool {
	return s.clock.Every(frame, s.cfg.Obstacles.SpawnInterval)
}

// Spawn appends a freshly generated pair at the right edge.
func (s *ObstacleStream) Spawn() *ObstaclePair {
	p := NewObstaclePair(s.cfg, s.clock, s.art, s.rng)
	s.pairs.PushBack(p)
	return p
}

// Evict drops pairs from the front while the oldest is off screen and
// returns how many were removed.
func (s *ObstacleStream) Evict() int {
	n := 0
	for {
		p, ok := s.pairs.Front()
		if !ok || p.Visible() {
			return n
		}
		s.pairs.PopFront()
		n++
	}
}

// Update scrolls every pair.
func (s *ObstacleStream) Update(elapsedFrames float64) {
	for p := range s.pairs.All() {
		p.Update(elapsedFrames)
	}
}

// Score marks every pair whose right edge is left of creatureX as counted
// and returns how many were newly counted. Each pair counts once.
func (s *ObstacleStream) Score(creatureX float64) int {
	scored := 0
	for p := range s.pairs.All() {
		if !p.scoreCounted && p.x+float64(p.Width()) < creatureX {
			p.scoreCounted = true
			scored++
		}
	}
	return scored
}

// Collides reports whether the creature overlaps any pair.
func (s *ObstacleStream) Collides(c *Creature, at time.Duration) bool {
	for p := range s.pairs.All() {
		if p.CollidesWith(c, at) {
			return true
		}
	}
	return false
}

// Pairs iterates over the live pairs, oldest first.
func (s *ObstacleStream) Pairs() iter.Seq[*ObstaclePair] {
	return s.pairs.All()
}

// Len returns the number of live pairs.
func (s *ObstacleStream) Len() int {
	return s.pairs.Len()
}
