package entity

import (
	"fmt"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// NewProjectile spawns a shot at (x, y) in world pixels. speed is signed.
func NewProjectile(w *ecs.World, gun component.Gun, x, y, speed float64) (ecs.Entity, error) {
	shot := ecs.CreateEntity(w)
	if err := ecs.Add(w, shot, component.ProjectileComponent.Kind(), &component.Projectile{
		Rect:   common.Rect{X: x, Y: y, W: gun.Size, H: gun.Size},
		Speed:  speed,
		Points: gun.Points,
	}); err != nil {
		return 0, fmt.Errorf("projectile: add projectile component: %w", err)
	}
	if err := ecs.Add(w, shot, component.TTLComponent.Kind(), &component.TTL{Frames: gun.TTL}); err != nil {
		return 0, fmt.Errorf("projectile: add ttl: %w", err)
	}
	return shot, nil
}
