package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// activeCamera returns the scroll state, or nil when the world has no camera.
func activeCamera(w *ecs.World) *component.Camera {
	e, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return nil
	}
	cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
	return cam
}

func scrollOf(w *ecs.World) float64 {
	if cam := activeCamera(w); cam != nil {
		return cam.Scroll
	}
	return 0
}

type playerRefs struct {
	entity  ecs.Entity
	player  *component.Player
	body    *component.Body
	input   *component.Input
	gravity *component.GravityScale
}

func findPlayer(w *ecs.World) (playerRefs, bool) {
	var refs playerRefs
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return refs, false
	}
	refs.entity = e
	if refs.player, ok = ecs.Get(w, e, component.PlayerComponent.Kind()); !ok {
		return refs, false
	}
	if refs.body, ok = ecs.Get(w, e, component.BodyComponent.Kind()); !ok {
		return refs, false
	}
	if refs.input, ok = ecs.Get(w, e, component.InputComponent.Kind()); !ok {
		refs.input = &component.Input{}
	}
	if refs.gravity, ok = ecs.Get(w, e, component.GravityScaleComponent.Kind()); !ok {
		refs.gravity = &component.GravityScale{Scale: 1}
	}
	return refs, true
}
