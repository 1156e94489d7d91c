package input

// Snapshot is the frozen input of one frame. The *Pressed fields are true only
// on the first frame an action becomes active.
type Snapshot struct {
	Left    bool
	Right   bool
	Jump    bool
	Run     bool
	Shoot   bool
	Flip    bool
	Restart bool
	Pause   bool

	JumpPressed    bool
	RestartPressed bool
	PausePressed   bool
}

// MoveX returns -1, 0 or 1 for the held horizontal direction.
func (s Snapshot) MoveX() float64 {
	x := 0.0
	if s.Left {
		x--
	}
	if s.Right {
		x++
	}
	return x
}

// Snapshot samples the held keys through b. prev is the previous frame's
// snapshot of the same consumer and is only used for edge detection.
func (k *KeyState) Snapshot(b Bindings, prev Snapshot) Snapshot {
	s := Snapshot{
		Left:    b.Active(k, ActionLeft),
		Right:   b.Active(k, ActionRight),
		Jump:    b.Active(k, ActionJump),
		Run:     b.Active(k, ActionRun),
		Shoot:   b.Active(k, ActionShoot),
		Flip:    b.Active(k, ActionFlip),
		Restart: b.Active(k, ActionRestart),
		Pause:   b.Active(k, ActionPause),
	}
	s.JumpPressed = s.Jump && !prev.Jump
	s.RestartPressed = s.Restart && !prev.Restart
	s.PausePressed = s.Pause && !prev.Pause
	return s
}
