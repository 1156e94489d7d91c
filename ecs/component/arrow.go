package component

// Arrow is a decorative chevron in world space.
type Arrow struct {
	X, Y   float64
	Height float64
	Color  string
}

var ArrowComponent = NewComponent[Arrow]()
