package component

import "github.com/milk9111/platformer/common"

// Projectile flies horizontally in world space at Speed pixels per frame.
type Projectile struct {
	Rect   common.Rect
	Speed  float64
	Points int
}

var ProjectileComponent = NewComponent[Projectile]()

// Gun describes what the player fires.
type Gun struct {
	Speed  float64
	Size   float64
	Delay  int
	TTL    int
	Points int
}

var GunComponent = NewComponent[Gun]()
