package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
)

// PlayerControllerSystem turns held input into velocity: steering, jumping,
// run and walk speed, ground friction and gravity. It clears Grounded at the
// end so that only this frame's platform contacts can set it again.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach4(w,
		component.PlayerComponent.Kind(),
		component.BodyComponent.Kind(),
		component.InputComponent.Kind(),
		component.GravityScaleComponent.Kind(),
		func(e ecs.Entity, player *component.Player, body *component.Body, in *component.Input, gravity *component.GravityScale) {
			if !player.Alive {
				return
			}
			b := &body.Body
			t := player.Tuning
			dir := gravity.Scale

			if b.Grounded {
				player.AirFrames = 0
			} else {
				player.AirFrames++
			}

			if in.Right {
				physics.ApplyHorizontal(b, t, 1)
			}
			if in.Left {
				physics.ApplyHorizontal(b, t, -1)
			}
			if in.MoveX != 0 {
				player.FacingLeft = in.MoveX < 0
			}

			if in.Jump {
				started := physics.Jump(b, t, dir)
				// A resting body touches the floor edge on alternate frames
				// only, so a single frame without contact is not a fall.
				if !started && in.JumpPressed && player.AirFrames > 1 && player.DoubleJumps > 0 {
					physics.DoubleJump(b, t, dir)
					player.DoubleJumps--
					w.Events().Push(ecs.Event{Kind: ecs.EventDoubleJump, Entity: e, Value: player.DoubleJumps})
				}
			}

			physics.ApplyRun(b, t, in.Run)
			physics.ApplyFriction(b, t, in.Left || in.Right)
			physics.ApplyGravity(b, t, dir)

			b.Grounded = false
		})
}
