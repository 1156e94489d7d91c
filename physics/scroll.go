package physics

// ScrollTracker keeps the player inside a dead zone by scrolling the world
// instead of moving the player once it reaches the zone edges.
//
// The left edge is Margin, the right edge is the middle of the view. Scroll
// distances are zero or negative: scrolling right decreases them, and they
// never go below -LevelWidth.
type ScrollTracker struct {
	Margin     float64
	ViewWidth  float64
	LevelWidth float64
}

// Advance applies one frame of horizontal velocity vx and returns the new
// screen x of the player and the new scroll distance. Whatever part of vx the
// scroll clamp cannot absorb moves the player instead.
func (s ScrollTracker) Advance(x, scroll, vx float64) (float64, float64) {
	half := s.ViewWidth / 2
	switch {
	case x > s.Margin && x < half:
		return x + vx, scroll
	case x >= half:
		if vx > 0 && -scroll < s.LevelWidth {
			next := scroll - vx
			if next < -s.LevelWidth {
				x += -s.LevelWidth - next
				next = -s.LevelWidth
			}
			return x, next
		}
		return x + vx, scroll
	default:
		if vx < 0 && scroll < 0 {
			next := scroll - vx
			if next > 0 {
				x -= next
				next = 0
			}
			return x, next
		}
		return x + vx, scroll
	}
}
