package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
)

// PickupCollectSystem hands out coins and jump coins the player overlaps.
type PickupCollectSystem struct{}

func NewPickupCollectSystem() *PickupCollectSystem { return &PickupCollectSystem{} }

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	p, ok := findPlayer(w)
	if !ok || !p.player.Alive {
		return
	}
	scroll := scrollOf(w)

	ecs.ForEach(w, component.PickupComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup) {
		if pickup.Collected {
			return
		}
		if !physics.Overlaps(p.body.Rect, pickup.Rect.Translate(scroll, 0)) {
			return
		}

		pickup.Collected = true
		p.player.Score += pickup.Score
		p.player.DoubleJumps += pickup.DoubleJumps

		evt := ecs.Event{Kind: ecs.EventCoinCollected, Entity: e, Value: pickup.Score}
		if pickup.Kind == component.PickupJumpCoin {
			evt = ecs.Event{Kind: ecs.EventJumpCoinCollected, Entity: e, Value: pickup.DoubleJumps}
		} else {
			p.player.Coins++
		}
		w.Events().Push(evt)
	})
}
