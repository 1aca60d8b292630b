package core

import (
	"math"
	"testing"
	"time"
)

func TestClockRoundTrip(t *testing.T) {
	for _, fps := range []int{24, 30, 60, 144} {
		c := NewClock(fps)
		for _, ms := range []float64{0, 1, 16.6667, 150, 3000, 123456.789} {
			got := c.FramesToMillis(c.MillisToFrames(ms))
			if math.Abs(got-ms) > 1e-9*math.Max(1, ms) {
				t.Errorf("fps=%d: FramesToMillis(MillisToFrames(%v)) = %v", fps, ms, got)
			}
		}
	}
}

func TestClockConversions(t *testing.T) {
	c := NewClock(60)

	if got := c.FramesToMillis(60); got != 1000 {
		t.Errorf("FramesToMillis(60) = %v, expected 1000", got)
	}
	if got := c.MillisToFrames(3000); got != 180 {
		t.Errorf("MillisToFrames(3000) = %v, expected 180", got)
	}
	if got := c.TickInterval(); got != time.Second/60 {
		t.Errorf("TickInterval() = %v, expected %v", got, time.Second/60)
	}
}

func TestClockDefaultFPS(t *testing.T) {
	if got := NewClock(0).FPS(); got != DefaultFPS {
		t.Errorf("NewClock(0).FPS() = %d, expected %d", got, DefaultFPS)
	}
	if got := NewClock(-5).FPS(); got != DefaultFPS {
		t.Errorf("NewClock(-5).FPS() = %d, expected %d", got, DefaultFPS)
	}
}

func TestClockEvery(t *testing.T) {
	c := NewClock(60)

	tests := []struct {
		frame    int
		interval float64
		expected bool
	}{
		{0, 3000, true},
		{1, 3000, false},
		{179, 3000, false},
		{180, 3000, true},
		{360, 3000, true},
		{7, 0, true},    // clamped to every frame
		{7, 1, true},    // rounds to 0 frames, clamped to 1
		{9, 100, false}, // 6 frames
		{12, 100, true},
	}

	for _, tc := range tests {
		if got := c.Every(tc.frame, tc.interval); got != tc.expected {
			t.Errorf("Every(%d, %v) = %v, expected %v", tc.frame, tc.interval, got, tc.expected)
		}
	}
}
