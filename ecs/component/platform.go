package component

import "github.com/milk9111/platformer/common"

// Platform is a static obstacle. Bound platforms are screen-space walls that
// ignore scrolling; the rest live in world space.
type Platform struct {
	Rect  common.Rect
	Bound bool
}

var PlatformComponent = NewComponent[Platform]()
