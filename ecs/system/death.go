package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// DeathSystem animates a dead player falling off the screen.
type DeathSystem struct{}

func NewDeathSystem() *DeathSystem {
	return &DeathSystem{}
}

func (d *DeathSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, player *component.Player, body *component.Body) {
		if player.Alive {
			return
		}
		body.Y += body.VY
		body.VY += player.DeathGravity
	})
}
