package core

import (
	"math"
	"time"
)

// DefaultFPS is the target frame rate used when none is configured.
const DefaultFPS = 60

// Clock converts between frame ticks and milliseconds at a fixed target rate.
//
// Speeds are expressed per millisecond and converted with FramesToMillis, so
// the world moves at the same rate regardless of the configured FPS.
// Recurring events are scheduled with Every against the frame counter rather
// than a wall-clock timer: the counter does not advance while the game is
// paused, so an interval never fires early or late after a resume.
type Clock struct {
	fps int
}

// NewClock creates a clock for the given frame rate. Non-positive rates fall
// back to DefaultFPS.
func NewClock(fps int) Clock {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return Clock{fps: fps}
}

// FPS returns the target frame rate.
func (c Clock) FPS() int {
	return c.fps
}

// FramesToMillis converts a frame count into milliseconds.
func (c Clock) FramesToMillis(frames float64) float64 {
	return 1000.0 * frames / float64(c.fps)
}

// MillisToFrames converts milliseconds into a (fractional) frame count.
func (c Clock) MillisToFrames(ms float64) float64 {
	return float64(c.fps) * ms / 1000.0
}

// Every reports whether a recurring event with the given period fires on
// frame. The period is rounded to whole frames and is at least one frame.
func (c Clock) Every(frame int, intervalMs float64) bool {
	period := int(math.Round(c.MillisToFrames(intervalMs)))
	if period < 1 {
		period = 1
	}
	return frame%period == 0
}

// TickInterval is the wall-clock duration of one frame.
func (c Clock) TickInterval() time.Duration {
	return time.Second / time.Duration(c.fps)
}
