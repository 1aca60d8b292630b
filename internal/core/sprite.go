package core

import "time"

// Sprite is the capability set shared by everything that moves and collides.
// The time argument is the wall-clock offset since the loop started; it only
// selects animation frames and never feeds physics.
type Sprite interface {
	Rect() Rect
	Mask(at time.Duration) *Mask
	Image(at time.Duration) *Image
	Update(elapsedFrames float64)
}

// Collide tests two sprites for a pixel-accurate overlap at their current
// positions. Bounding boxes only provide the relative offset; irregular
// shapes such as wings and pipe caps never collide on empty cells.
func Collide(a, b Sprite, at time.Duration) bool {
	ra, rb := a.Rect(), b.Rect()
	if !ra.Intersects(rb) {
		return false
	}
	return a.Mask(at).Overlaps(b.Mask(at), rb.X-ra.X, rb.Y-ra.Y)
}
