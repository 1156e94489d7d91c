package entity

import (
	"fmt"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// NewEnemy places an enemy with its feet at bottom, in world pixels.
func NewEnemy(w *ecs.World, spec prefabs.EnemySpec, x, bottom float64) (ecs.Entity, error) {
	enemy := ecs.CreateEntity(w)
	if err := ecs.Add(w, enemy, component.EnemyComponent.Kind(), &component.Enemy{
		Rect:   common.Rect{X: x, Y: bottom - spec.Size, W: spec.Size, H: spec.Size},
		Speed:  spec.Speed,
		Alive:  true,
		Points: spec.Points,
		Script: spec.Script,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy component: %w", err)
	}
	return enemy, nil
}
