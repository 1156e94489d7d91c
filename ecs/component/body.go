package component

import "github.com/milk9111/platformer/physics"

// Body is the player's moving AABB with its velocity and contact flags. It
// lives in screen space; the world scrolls underneath it.
type Body struct {
	physics.Body
}

var BodyComponent = NewComponent[Body]()
