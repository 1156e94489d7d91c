package component

// Camera is the horizontal scroll state. Scroll is the world-to-screen offset
// and stays within [-LevelWidth, 0].
type Camera struct {
	Scroll     float64
	Margin     float64
	ViewWidth  float64
	ViewHeight float64
	LevelWidth float64
}

var CameraComponent = NewComponent[Camera]()
