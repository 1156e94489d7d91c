package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// CooldownSystem ticks one kind of cooldown down by a frame. Counters stop at
// -1, which already reads as ready.
type CooldownSystem struct {
	kind component.ComponentKind[component.Cooldown]
}

func NewCooldownSystem(handle component.ComponentHandle[component.Cooldown]) *CooldownSystem {
	return &CooldownSystem{kind: handle.Kind()}
}

func (s *CooldownSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, s.kind, func(e ecs.Entity, cd *component.Cooldown) {
		if cd.Frames >= 0 {
			cd.Frames--
		}
	})
}
