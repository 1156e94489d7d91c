package component

// Cooldown counts frames down past zero. The guarded action is ready once
// Frames is negative, and re-arming sets Frames to the cooldown length.
type Cooldown struct {
	Frames int
}

func (c *Cooldown) Ready() bool {
	return c != nil && c.Frames < 0
}

var (
	ShootCooldownComponent = NewComponent[Cooldown]()
	FlipCooldownComponent  = NewComponent[Cooldown]()
)
