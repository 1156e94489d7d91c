package entity

import (
	"fmt"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
)

// NewPlayer creates the player with its feet at bottom and its left edge at x,
// both in screen pixels.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, gun prefabs.ProjectileSpec, x, bottom float64) (ecs.Entity, error) {
	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	if err := ecs.Add(w, player, component.BodyComponent.Kind(), &component.Body{Body: physics.Body{
		Rect:  common.Rect{X: x, Y: bottom - spec.Size, W: spec.Size, H: spec.Size},
		Speed: spec.WalkSpeed,
	}}); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}

	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{
		Tuning: physics.Tuning{
			Gravity:      spec.Gravity,
			Friction:     spec.Friction,
			Acceleration: spec.Acceleration,
			WalkSpeed:    spec.WalkSpeed,
			RunSpeed:     spec.RunSpeed,
			JumpSpeed:    spec.JumpSpeed,
			FloatFrames:  spec.FloatFrames,
		},
		StompVelocity:  spec.StompVelocity,
		StompBounce:    spec.StompBounce,
		DeathDropSpeed: spec.DeathDropSpeed,
		DeathGravity:   spec.DeathGravity,
		HatCoins:       spec.HatCoins,
		Alive:          true,
	}); err != nil {
		return 0, fmt.Errorf("player: add player component: %w", err)
	}

	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	if err := ecs.Add(w, player, component.GravityScaleComponent.Kind(), &component.GravityScale{
		Scale:      1,
		FlipFrames: spec.GravityFlipFrames,
	}); err != nil {
		return 0, fmt.Errorf("player: add gravity scale: %w", err)
	}
	if err := ecs.Add(w, player, component.FlipCooldownComponent.Kind(), &component.Cooldown{}); err != nil {
		return 0, fmt.Errorf("player: add flip cooldown: %w", err)
	}

	if err := ecs.Add(w, player, component.GunComponent.Kind(), &component.Gun{
		Speed:  gun.Speed,
		Size:   gun.Size,
		Delay:  gun.Delay,
		TTL:    gun.TTLFrames,
		Points: gun.Points,
	}); err != nil {
		return 0, fmt.Errorf("player: add gun: %w", err)
	}
	if err := ecs.Add(w, player, component.ShootCooldownComponent.Kind(), &component.Cooldown{}); err != nil {
		return 0, fmt.Errorf("player: add shoot cooldown: %w", err)
	}

	return player, nil
}
