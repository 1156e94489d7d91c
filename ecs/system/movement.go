package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/physics"
)

// MovementSystem closes the frame for the player: grounded bookkeeping, then
// horizontal motion through the scroll tracker and vertical integration.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	p, ok := findPlayer(w)
	if !ok || !p.player.Alive {
		return
	}
	b := &p.body.Body
	physics.Settle(b, p.player.Tuning)

	if cam := activeCamera(w); cam != nil {
		tracker := physics.ScrollTracker{Margin: cam.Margin, ViewWidth: cam.ViewWidth, LevelWidth: cam.LevelWidth}
		b.X, cam.Scroll = tracker.Advance(b.X, cam.Scroll, b.VX)
	} else {
		b.X += b.VX
	}
	b.Y += b.VY
}
