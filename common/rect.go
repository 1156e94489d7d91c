package common

const (
	BaseWidth  = 853
	BaseHeight = 480
	HUDHeight  = 200
)

type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }

// Translate returns a copy of r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersects reports whether the interiors of r and other overlap. Rectangles
// that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}
