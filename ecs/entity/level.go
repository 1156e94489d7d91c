package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

// LoadLevelToWorld populates an empty world with the camera, the level's
// static geometry, its enemies, pickups and arrows, and finally the player.
func LoadLevelToWorld(w *ecs.World, layout *levels.Layout, set *prefabs.Set) (ecs.Entity, error) {
	if layout == nil || set == nil {
		return 0, fmt.Errorf("level: nil layout or prefab set")
	}

	if _, err := NewCamera(w, set.World.ScrollMargin, layout.ViewWidth, layout.ViewHeight, layout.LevelWidth); err != nil {
		return 0, err
	}

	for i, p := range layout.Platforms {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{Rect: p.Rect, Bound: p.Bound}); err != nil {
			return 0, fmt.Errorf("level: platform %d: %w", i, err)
		}
	}

	for _, p := range layout.Enemies {
		if _, err := NewEnemy(w, set.Enemy, p.X, p.Y); err != nil {
			return 0, err
		}
	}

	for _, p := range layout.Coins {
		if _, err := NewPickup(w, set.Pickups, component.PickupCoin, p.X, p.Y); err != nil {
			return 0, err
		}
	}
	for _, p := range layout.JumpCoins {
		if _, err := NewPickup(w, set.Pickups, component.PickupJumpCoin, p.X, p.Y); err != nil {
			return 0, err
		}
	}

	for i, a := range layout.Arrows {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.ArrowComponent.Kind(), &component.Arrow{
			X: a.X, Y: a.Y, Height: a.Height, Color: a.Color,
		}); err != nil {
			return 0, fmt.Errorf("level: arrow %d: %w", i, err)
		}
	}

	return NewPlayer(w, set.Player, set.Projectile, layout.SpawnX, layout.SpawnBottom)
}
