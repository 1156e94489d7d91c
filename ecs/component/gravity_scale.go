package component

// GravityScale is the sign of gravity for a body: 1 pulls down, -1 pulls up.
// FlipFrames is the cooldown applied after each flip.
type GravityScale struct {
	Scale      float64
	FlipFrames int
}

var GravityScaleComponent = NewComponent[GravityScale]()
