package entity

import (
	"fmt"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

func NewPickup(w *ecs.World, spec prefabs.PickupsSpec, kind component.PickupKind, x, y float64) (ecs.Entity, error) {
	var values prefabs.PickupSpec
	switch kind {
	case component.PickupCoin:
		values = spec.Coin
	case component.PickupJumpCoin:
		values = spec.JumpCoin
	default:
		return 0, fmt.Errorf("pickup: unknown kind %q", kind)
	}

	pickup := ecs.CreateEntity(w)
	if err := ecs.Add(w, pickup, component.PickupComponent.Kind(), &component.Pickup{
		Kind:        kind,
		Rect:        common.Rect{X: x, Y: y, W: spec.Size, H: spec.Size},
		Score:       values.Score,
		DoubleJumps: values.DoubleJumps,
	}); err != nil {
		return 0, fmt.Errorf("pickup: add pickup component: %w", err)
	}
	return pickup, nil
}
