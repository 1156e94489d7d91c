package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
)

// InputSystem copies the frame's input snapshot into every Input component.
type InputSystem struct {
	snapshot input.Snapshot
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// SetSnapshot stores the snapshot applied by the next Update.
func (i *InputSystem) SetSnapshot(s input.Snapshot) {
	i.snapshot = s
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	s := i.snapshot
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, in *component.Input) {
		in.MoveX = s.MoveX()
		in.Left = s.Left
		in.Right = s.Right
		in.Jump = s.Jump
		in.JumpPressed = s.JumpPressed
		in.Run = s.Run
		in.Shoot = s.Shoot
		in.Flip = s.Flip
	})
}
