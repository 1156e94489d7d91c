package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// GravitySystem inverts an entity's gravity when flip is held and its flip
// cooldown has run out.
type GravitySystem struct{}

func NewGravitySystem() *GravitySystem {
	return &GravitySystem{}
}

func (g *GravitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.InputComponent.Kind(),
		component.GravityScaleComponent.Kind(),
		component.FlipCooldownComponent.Kind(),
		func(e ecs.Entity, in *component.Input, gravity *component.GravityScale, cd *component.Cooldown) {
			if !in.Flip || !cd.Ready() {
				return
			}
			gravity.Scale = -gravity.Scale
			cd.Frames = gravity.FlipFrames
			w.Events().Push(ecs.Event{Kind: ecs.EventGravityFlipped, Entity: e, Value: int(gravity.Scale)})
		})
}
