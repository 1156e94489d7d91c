package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
)

// PlatformCollisionSystem pushes the player out of every platform it overlaps
// and applies the contact response for the side that touched.
type PlatformCollisionSystem struct{}

func NewPlatformCollisionSystem() *PlatformCollisionSystem {
	return &PlatformCollisionSystem{}
}

func (s *PlatformCollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	p, ok := findPlayer(w)
	if !ok || !p.player.Alive {
		return
	}
	scroll := scrollOf(w)
	b := &p.body.Body

	ecs.ForEach(w, component.PlatformComponent.Kind(), func(_ ecs.Entity, platform *component.Platform) {
		side := physics.ResolveScrolled(&b.Rect, platform.Rect, platform.Bound, scroll)
		physics.Contact(b, side, p.gravity.Scale, p.input.Left, p.input.Right)
	})
}
