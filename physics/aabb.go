// Package physics holds the frame-level movement rules of the platformer:
// AABB collision resolution, the per-frame integrator and the scroll tracker.
// Nothing here knows about entities or rendering.
package physics

import (
	"math"

	"github.com/milk9111/platformer/common"
)

// Side names the side of the moving rectangle that touched the obstacle.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Horizontal reports whether the contact was resolved along the x axis.
func (s Side) Horizontal() bool {
	return s == SideLeft || s == SideRight
}

// Vertical reports whether the contact was resolved along the y axis.
func (s Side) Vertical() bool {
	return s == SideTop || s == SideBottom
}

// separation returns the center-to-center vector from b to a and the sums of
// half extents on both axes.
func separation(a, b common.Rect) (vx, vy, hw, hh float64) {
	vx = a.CenterX() - b.CenterX()
	vy = a.CenterY() - b.CenterY()
	hw = a.W/2 + b.W/2
	hh = a.H/2 + b.H/2
	return vx, vy, hw, hh
}

// Overlaps reports whether a and b overlap. Exact edge contact is not an
// overlap.
func Overlaps(a, b common.Rect) bool {
	vx, vy, hw, hh := separation(a, b)
	return math.Abs(vx) < hw && math.Abs(vy) < hh
}

// Resolve pushes a out of b along the axis of least penetration and reports
// which side of a made contact. b is never modified. When the penetration is
// equal on both axes the contact is treated as vertical.
func Resolve(a *common.Rect, b common.Rect) Side {
	if a == nil {
		return SideNone
	}
	vx, vy, hw, hh := separation(*a, b)
	if math.Abs(vx) >= hw || math.Abs(vy) >= hh {
		return SideNone
	}

	ox := hw - math.Abs(vx)
	oy := hh - math.Abs(vy)
	if ox >= oy {
		if vy > 0 {
			a.Y += oy
			return SideTop
		}
		a.Y -= oy
		return SideBottom
	}
	if vx > 0 {
		a.X += ox
		return SideLeft
	}
	a.X -= ox
	return SideRight
}

// ScreenRect maps a world-space obstacle into screen space. Bound obstacles
// already live in screen space and are returned unchanged.
func ScreenRect(b common.Rect, bound bool, scroll float64) common.Rect {
	if bound {
		return b
	}
	return b.Translate(scroll, 0)
}

// ResolveScrolled resolves a screen-space rectangle against a world-space
// obstacle using the current scroll distance.
func ResolveScrolled(a *common.Rect, b common.Rect, bound bool, scroll float64) Side {
	return Resolve(a, ScreenRect(b, bound, scroll))
}
