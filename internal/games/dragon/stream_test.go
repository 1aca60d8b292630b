package dragon

import (
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

func newTestStream(cfg config.DragonConfig, seed int64) *ObstacleStream {
	return NewObstacleStream(seed, cfg, core.NewClock(cfg.Timing.FPS), obstacleArt(solidArt(cfg)))
}

func TestStreamEvictsFromFront(t *testing.T) {
	cfg := config.DefaultDragonConfig()
	s := newTestStream(cfg, 1)

	var created []*ObstaclePair
	for i := 0; i < 4; i++ {
		created = append(created, s.Spawn())
		s.Update(60)
	}
	if s.Len() != 4 {
		t.Fatalf("Len() = %d, expected 4", s.Len())
	}
	if n := s.Evict(); n != 0 {
		t.Fatalf("Evict() removed %d visible pairs", n)
	}

	for s.Len() == 4 {
		s.Update(1)
		s.Evict()
	}

	// Remaining pairs are a suffix of creation order
	i := len(created) - s.Len()
	for p := range s.Pairs() {
		if p != created[i] {
			t.Fatalf("pair %d out of order", i)
		}
		if !p.Visible() {
			t.Errorf("pair %d kept while invisible", i)
		}
		i++
	}
}

func TestStreamEvictStopsAtFirstVisible(t *testing.T) {
	cfg := config.DefaultDragonConfig()
	s := newTestStream(cfg, 1)

	a := s.Spawn()
	b := s.Spawn()
	c := s.Spawn()
	a.x = -100
	b.x = 10
	c.x = -100

	if n := s.Evict(); n != 1 {
		t.Fatalf("Evict() = %d, expected 1", n)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.Len())
	}
}

func TestStreamScoresOnce(t *testing.T) {
	cfg := pixelConfig()
	s := newTestStream(cfg, 9)
	p := s.Spawn()

	creatureX := float64(cfg.Creature.X)
	total := 0
	for tick := 0; tick < 1000; tick++ {
		s.Update(1)
		passed := p.X()+float64(p.Width()) < creatureX

		got := s.Score(creatureX)
		expected := 0
		if passed && total == 0 {
			expected = 1
		}
		if got != expected {
			t.Fatalf("tick %d at x=%v: Score() = %d, expected %d", tick, p.X(), got, expected)
		}
		total += got
	}

	if total != 1 {
		t.Errorf("total score = %d, expected 1", total)
	}
	if !p.ScoreCounted() {
		t.Error("pair should be marked counted")
	}
}

func TestStreamReset(t *testing.T) {
	cfg := config.DefaultDragonConfig()
	s := newTestStream(cfg, 4)
	first := s.Spawn().TopHeight()
	s.Spawn()

	s.Reset(4)
	if s.Len() != 0 {
		t.Fatalf("Len() after Reset = %d", s.Len())
	}
	if got := s.Spawn().TopHeight(); got != first {
		t.Errorf("reseeded spawn TopHeight = %d, expected %d", got, first)
	}
}

func TestStreamSpawnDue(t *testing.T) {
	cfg := config.DefaultDragonConfig()
	cfg.Obstacles.SpawnInterval = 1000
	s := newTestStream(cfg, 1)

	for frame, expected := range map[int]bool{0: true, 1: false, 59: false, 60: true, 120: true} {
		if got := s.SpawnDue(frame); got != expected {
			t.Errorf("SpawnDue(%d) = %v, expected %v", frame, got, expected)
		}
	}
}
