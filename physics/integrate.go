package physics

import (
	"math"

	"github.com/milk9111/platformer/common"
)

const (
	// airControlDivisor scales the counter-push applied while airborne.
	airControlDivisor = 1.2
	// floatDivisor scales the extra lift applied during the float window.
	floatDivisor = 1.7
	// overspeedDecay slows a body that exceeds walk speed once run is released.
	overspeedDecay = 1.1
	// bonkRebound is applied to vertical velocity when the head hits a ceiling.
	bonkRebound = -0.2
)

// Tuning holds the per-frame movement constants of a body.
type Tuning struct {
	Gravity      float64
	Friction     float64
	Acceleration float64
	WalkSpeed    float64
	RunSpeed     float64
	JumpSpeed    float64
	FloatFrames  int
}

// Body is a moving AABB with the state the integrator needs between frames.
type Body struct {
	common.Rect
	VX, VY float64
	// Speed is the current horizontal speed cap (walk or run).
	Speed      float64
	Grounded   bool
	Jumping    bool
	FloatTimer int
}

// ApplyHorizontal accelerates b toward dir (-1 left, +1 right). A grounded
// reversal stops the body first; airborne bodies get a counter-push so that
// steering in the air is weaker than on the ground.
func ApplyHorizontal(b *Body, t Tuning, dir float64) {
	if b.VX*dir < 0 && !b.Jumping {
		b.VX = 0
	}
	if b.Jumping {
		b.VX += -t.Acceleration * dir / airControlDivisor
	}
	if b.VX*dir < b.Speed {
		b.VX += t.Acceleration * dir
	}
}

// Jump starts a jump when b is grounded. Otherwise, while the float window is
// open, it adds a partial upward impulse. It reports whether a new jump began.
func Jump(b *Body, t Tuning, gravDir float64) bool {
	if !b.Jumping && b.Grounded {
		b.Jumping = true
		b.Grounded = false
		b.VY = -(t.JumpSpeed * gravDir)
		return true
	}
	if b.FloatTimer > 0 {
		b.VY -= t.Gravity * gravDir / floatDivisor
	}
	return false
}

// DoubleJump replaces the vertical velocity with a fresh jump impulse.
func DoubleJump(b *Body, t Tuning, gravDir float64) {
	b.Jumping = true
	b.VY = -(t.JumpSpeed * gravDir)
}

// ApplyRun sets the speed cap. Releasing run while faster than walk speed
// bleeds off the excess over several frames.
func ApplyRun(b *Body, t Tuning, run bool) {
	if run {
		b.Speed = t.RunSpeed
		return
	}
	b.Speed = t.WalkSpeed
	if math.Abs(b.VX) > t.WalkSpeed {
		b.VX /= overspeedDecay
	}
}

// ApplyFriction decays horizontal velocity on the ground when no direction is
// held.
func ApplyFriction(b *Body, t Tuning, steering bool) {
	if b.Grounded && !steering {
		b.VX *= t.Friction
	}
}

// ApplyGravity adds one frame of gravity. gravDir is +1 for normal gravity and
// -1 when gravity is inverted.
func ApplyGravity(b *Body, t Tuning, gravDir float64) {
	b.VY += t.Gravity * gravDir
}

// Contact applies the response to a platform contact on side. A body already
// moving away from its floor, as on the frame a jump starts, does not land.
func Contact(b *Body, side Side, gravDir float64, leftHeld, rightHeld bool) {
	switch {
	case (side == SideLeft && !rightHeld) || (side == SideRight && !leftHeld):
		b.VX = 0
		b.Jumping = false
	case side == SideBottom:
		if gravDir > 0 {
			land(b, gravDir)
		} else {
			b.VY *= bonkRebound
		}
	case side == SideTop:
		if gravDir < 0 {
			land(b, gravDir)
		} else {
			b.VY *= bonkRebound
		}
	}
}

func land(b *Body, gravDir float64) {
	if b.VY*gravDir < 0 {
		return
	}
	b.Grounded = true
	b.Jumping = false
}

// Settle runs after all contacts of a frame: a grounded body loses its
// vertical velocity and gets a fresh float window, an airborne one burns a
// frame of it.
func Settle(b *Body, t Tuning) {
	if b.Grounded {
		b.VY = 0
		b.FloatTimer = t.FloatFrames
		return
	}
	b.FloatTimer--
}
